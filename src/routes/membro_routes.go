package routes

import (
	"Backend-SGI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// MembroRoutes define as rotas do Membro API
func MembroRoutes(app *fiber.App) {
	membroRoutes := app.Group("/membros")
	membroRoutes.Get("/", controllers.GetMembros)         // lista paginada, filtro por situação
	membroRoutes.Post("/", controllers.CreateMembro)      // cria membro
	membroRoutes.Get("/:id", controllers.GetMembroByID)   // membro por ID
	membroRoutes.Put("/:id", controllers.UpdateMembro)    // atualiza membro
	membroRoutes.Delete("/:id", controllers.DeleteMembro) // remove membro
}
