package routes

import (
	"Backend-SGI/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// PresencaRoutes define as rotas de presença, aninhadas sob o grupo.
// As rotas fixas de relatório ficam antes de "/:data" para não serem capturadas pelo parâmetro.
func PresencaRoutes(app *fiber.App) {
	presencaRoutes := app.Group("/grupos/:grupoId/presencas")
	presencaRoutes.Get("/", controllers.GetRegistrosDePresenca)                     // registros (filtros membroId/de/ate)
	presencaRoutes.Get("/relatorio", controllers.GetRelatorioHistorico)             // relatório de frequência do período
	presencaRoutes.Post("/relatorio/exportar", controllers.SolicitarExportacao)     // pedido de exportação (assíncrono)
	presencaRoutes.Get("/:data", controllers.GetListaPresenca)                      // lista de presença do encontro
	presencaRoutes.Post("/:data", controllers.SalvarListaPresenca)                  // grava/atualiza marcações do encontro
}
