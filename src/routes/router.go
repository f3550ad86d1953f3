package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	GrupoRoutes(app)
	MembroRoutes(app)
	PresencaRoutes(app)
	ResumoRoutes(app)
	ExportacaoRoutes(app)

	// Rota de verificação da API
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
