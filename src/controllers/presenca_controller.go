package controllers

import (
	"Backend-SGI/src/services/presencas"
	"Backend-SGI/src/services/relatorios"
	"Backend-SGI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SalvarListaPresenca godoc
// @Summary      Save the mark sheet of a grupo for a date
// @Description  Grava as marcações explícitas (membroId -> presente) do encontro. Upsert idempotente por (grupo, membro, data); membro fora do corpo fica como não marcado.
// @Tags         presencas
// @Accept       json
// @Produce      json
// @Param        grupoId path string          true "Grupo ID"
// @Param        data    path string          true "Data do encontro (YYYY-MM-DD)"
// @Param        body    body map[string]bool true "Marcações: membroId -> presente"
// @Success      204  "lista salva"
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/presencas/{data} [post]
func SalvarListaPresenca(c *fiber.Ctx) error {
	var entradas map[string]bool
	if err := c.BodyParser(&entradas); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := presencas.SalvarListaPresenca(c.Params("grupoId"), c.Params("data"), entradas); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetListaPresenca godoc
// @Summary      Get the mark sheet view of a grupo for a date
// @Description  Roster do dia com as marcações existentes; null = ainda não marcado
// @Tags         presencas
// @Produce      json
// @Param        grupoId path string true "Grupo ID"
// @Param        data    path string true "Data do encontro (YYYY-MM-DD)"
// @Success      200  {object}  models.ListaPresencaView
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/presencas/{data} [get]
func GetListaPresenca(c *fiber.Ctx) error {
	lista, err := relatorios.GetListaPresenca(c.Params("grupoId"), c.Params("data"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(lista)
}

// GetRegistrosDePresenca godoc
// @Summary      List raw attendance records of a grupo
// @Description  Registros explícitos do grupo, filtráveis por membro e intervalo de datas
// @Tags         presencas
// @Produce      json
// @Param        grupoId  path  string true  "Grupo ID"
// @Param        membroId query string false "Filtrar por membro"
// @Param        de       query string false "Data inicial (YYYY-MM-DD)"
// @Param        ate      query string false "Data final (YYYY-MM-DD)"
// @Success      200  {array}   models.Presenca
// @Failure      400  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/presencas [get]
func GetRegistrosDePresenca(c *fiber.Ctx) error {
	registros, err := presencas.BuscarRegistros(
		c.Params("grupoId"),
		c.Query("membroId"),
		c.Query("de"),
		c.Query("ate"),
	)
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(registros)
}
