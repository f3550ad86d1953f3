package controllers

import (
	"Backend-SGI/src/services/relatorios"
	"Backend-SGI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRelatorioHistorico godoc
// @Summary      Attendance frequency report for a grupo over a period
// @Description  Frequência individual (ordenada por frequência desc, nome asc) e resumo do grupo. Sem de/ate usa o mês corrente. Período sem dados volta relatório vazio.
// @Tags         relatorios
// @Produce      json
// @Param        grupoId path  string true  "Grupo ID"
// @Param        de      query string false "Data inicial (YYYY-MM-DD)"
// @Param        ate     query string false "Data final (YYYY-MM-DD)"
// @Success      200  {object}  models.RelatorioHistorico
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/presencas/relatorio [get]
func GetRelatorioHistorico(c *fiber.Ctx) error {
	relatorio, err := relatorios.GetRelatorioHistorico(c.Params("grupoId"), c.Query("de"), c.Query("ate"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(relatorio)
}

// SolicitarExportacao godoc
// @Summary      Request a report export
// @Description  Registra o pedido e enfileira a montagem do payload serializado; o adaptador externo renderiza PDF/planilha
// @Tags         relatorios
// @Produce      json
// @Param        grupoId path  string true  "Grupo ID"
// @Param        de      query string false "Data inicial (YYYY-MM-DD)"
// @Param        ate     query string false "Data final (YYYY-MM-DD)"
// @Param        formato query string false "pdf ou xlsx" default(pdf)
// @Success      202  {object}  models.Exportacao
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/presencas/relatorio/exportar [post]
func SolicitarExportacao(c *fiber.Ctx) error {
	exportacao, err := relatorios.SolicitarExportacao(
		c.Params("grupoId"),
		c.Query("de"),
		c.Query("ate"),
		c.Query("formato"),
	)
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Export requested successfully",
		"data":    exportacao,
	})
}

// GetExportacao godoc
// @Summary      Get an export request by id
// @Tags         relatorios
// @Produce      json
// @Param        id path string true "Exportação ID"
// @Success      200  {object}  models.Exportacao
// @Failure      404  {object}  models.ErrorResponse
// @Router       /exportacoes/{id} [get]
func GetExportacao(c *fiber.Ctx) error {
	exportacao, err := relatorios.GetExportacao(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(exportacao)
}
