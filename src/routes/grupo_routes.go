package routes

import (
	"Backend-SGI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// GrupoRoutes define as rotas do Grupo API
func GrupoRoutes(app *fiber.App) {
	grupoRoutes := app.Group("/grupos")
	grupoRoutes.Get("/", controllers.GetGrupos)                   // lista paginada
	grupoRoutes.Post("/", controllers.CreateGrupo)                // cria grupo
	grupoRoutes.Get("/:id", controllers.GetGrupoByID)             // grupo por ID
	grupoRoutes.Put("/:id", controllers.UpdateGrupo)              // atualiza grupo
	grupoRoutes.Delete("/:id", controllers.DeleteGrupo)           // remove grupo
	grupoRoutes.Get("/:id/membros", controllers.GetRosterDoGrupo) // membros Ativos + Visitantes
}
