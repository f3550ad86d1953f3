package models

// ErrorResponse estrutura padrão para retorno de erro
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // detalhe do erro
}

// SuccessResponse estrutura JSON de sucesso usada pelo Swagger
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
