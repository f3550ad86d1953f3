package controllers

import (
	"strconv"

	"Backend-SGI/src/models"
	"Backend-SGI/src/services/membros"
	"Backend-SGI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateMembro - cadastra um membro
func CreateMembro(c *fiber.Ctx) error {
	var membro models.Membro
	if err := c.BodyParser(&membro); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := membros.CreateMembro(&membro); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Membro created successfully",
		"data":    membro,
	})
}

// GetMembros - lista membros com paginação e filtro de situação
func GetMembros(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	resultado, err := membros.GetAllMembros(params, c.Query("situacao"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), "Error fetching membros")
	}

	return c.JSON(resultado)
}

// GetMembroByID - busca um membro pelo ID
func GetMembroByID(c *fiber.Ctx) error {
	membro, err := membros.GetMembroByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), "Membro not found")
	}

	return c.JSON(membro)
}

// UpdateMembro - atualiza um membro
func UpdateMembro(c *fiber.Ctx) error {
	var membro models.Membro
	if err := c.BodyParser(&membro); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := membros.UpdateMembro(c.Params("id"), &membro); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Membro updated successfully",
	})
}

// DeleteMembro - remove um membro
func DeleteMembro(c *fiber.Ctx) error {
	if err := membros.DeleteMembro(c.Params("id")); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Membro deleted successfully",
	})
}
