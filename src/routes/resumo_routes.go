package routes

import (
	"Backend-SGI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// ResumoRoutes define as rotas dos resumos de encontro
func ResumoRoutes(app *fiber.App) {
	resumoRoutes := app.Group("/grupos/:grupoId/resumos")
	resumoRoutes.Get("/", controllers.GetResumos)                 // resumos do grupo
	resumoRoutes.Put("/recalcular", controllers.RecalcularResumos) // reconstrói os snapshots
	resumoRoutes.Get("/:data", controllers.GetResumoPorData)       // resumo de um encontro
}
