// error_utils.go
package utils

import (
	"errors"

	"Backend-SGI/src/models"

	"github.com/gofiber/fiber/v2"
)

// Erros sentinela da camada de serviços.
// ErrNaoEncontrado vale para entidades; período sem dados NÃO é erro,
// o relatório volta vazio.
var (
	ErrEntradaInvalida           = errors.New("entrada inválida")
	ErrNaoEncontrado             = errors.New("registro não encontrado")
	ErrArmazenamentoIndisponivel = errors.New("armazenamento indisponível")
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// StatusDoErro mapeia os sentinelas para o status HTTP correspondente
func StatusDoErro(err error) int {
	switch {
	case errors.Is(err, ErrEntradaInvalida):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNaoEncontrado):
		return fiber.StatusNotFound
	case errors.Is(err, ErrArmazenamentoIndisponivel):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
