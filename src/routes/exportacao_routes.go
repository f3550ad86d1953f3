package routes

import (
	"Backend-SGI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// ExportacaoRoutes define as rotas de consulta das exportações
func ExportacaoRoutes(app *fiber.App) {
	exportacaoRoutes := app.Group("/exportacoes")
	exportacaoRoutes.Get("/:id", controllers.GetExportacao) // status e payload da exportação
}
