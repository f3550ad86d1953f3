package controllers

import (
	"strconv"

	"Backend-SGI/src/models"
	"Backend-SGI/src/services/grupos"
	"Backend-SGI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateGrupo godoc
// @Summary      Create a new grupo
// @Description  Cria um grupo de crescimento
// @Tags         grupos
// @Accept       json
// @Produce      json
// @Param        body body models.Grupo true "Grupo"
// @Success      201  {object}  models.Grupo
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /grupos [post]
func CreateGrupo(c *fiber.Ctx) error {
	var grupo models.Grupo
	if err := c.BodyParser(&grupo); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := grupos.CreateGrupo(&grupo); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Grupo created successfully",
		"data":    grupo,
	})
}

// GetGrupos godoc
// @Summary      Get all grupos with pagination and search
// @Tags         grupos
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Number of items per page" default(10)
// @Param        search query  string  false  "Search term"
// @Param        sortBy query  string  false  "Field to sort by" default(nome)
// @Param        order  query  string  false  "Sort order (asc or desc)" default(asc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /grupos [get]
func GetGrupos(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	resultado, err := grupos.GetAllGrupos(params)
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), "Error fetching grupos")
	}

	return c.JSON(resultado)
}

// GetGrupoByID godoc
// @Summary      Get grupo by ID
// @Tags         grupos
// @Produce      json
// @Param        id path string true "Grupo ID"
// @Success      200  {object}  models.Grupo
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{id} [get]
func GetGrupoByID(c *fiber.Ctx) error {
	grupo, err := grupos.GetGrupoByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), "Grupo not found")
	}

	return c.JSON(grupo)
}

// UpdateGrupo godoc
// @Summary      Update grupo
// @Tags         grupos
// @Accept       json
// @Produce      json
// @Param        id   path string       true "Grupo ID"
// @Param        body body models.Grupo true "Grupo"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{id} [put]
func UpdateGrupo(c *fiber.Ctx) error {
	var grupo models.Grupo
	if err := c.BodyParser(&grupo); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := grupos.UpdateGrupo(c.Params("id"), &grupo); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Grupo updated successfully",
	})
}

// DeleteGrupo godoc
// @Summary      Delete grupo
// @Tags         grupos
// @Produce      json
// @Param        id path string true "Grupo ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{id} [delete]
func DeleteGrupo(c *fiber.Ctx) error {
	if err := grupos.DeleteGrupo(c.Params("id")); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Grupo deleted successfully",
	})
}

// GetRosterDoGrupo godoc
// @Summary      Get the live roster of a grupo
// @Description  Membros Ativos e Visitantes do grupo, ordenados por nome
// @Tags         grupos
// @Produce      json
// @Param        id path string true "Grupo ID"
// @Success      200  {array}   models.MembroRoster
// @Failure      404  {object}  models.ErrorResponse
// @Router       /grupos/{id}/membros [get]
func GetRosterDoGrupo(c *fiber.Ctx) error {
	roster, err := grupos.GetRoster(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(roster)
}
