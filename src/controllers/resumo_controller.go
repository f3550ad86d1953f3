package controllers

import (
	"log"

	"Backend-SGI/src/database"
	"Backend-SGI/src/services/resumos"
	"Backend-SGI/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetResumos - lista os resumos de encontro do grupo (um por data, em ordem cronológica)
func GetResumos(c *fiber.Ctx) error {
	lista, err := resumos.GetResumosPorGrupo(c.Params("grupoId"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(lista)
}

// GetResumoPorData - resumo de um encontro específico
func GetResumoPorData(c *fiber.Ctx) error {
	resumo, err := resumos.GetResumoPorData(c.Params("grupoId"), c.Params("data"))
	if err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(resumo)
}

// RecalcularResumos godoc
// @Summary      Rebuild the per-meeting snapshots of a grupo
// @Description  Enfileira o recálculo quando o worker está configurado; caso contrário executa na hora
// @Tags         resumos
// @Produce      json
// @Param        grupoId path string true "Grupo ID"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Router       /grupos/{grupoId}/resumos/recalcular [put]
func RecalcularResumos(c *fiber.Ctx) error {
	grupoID := c.Params("grupoId")

	if database.AsynqClient != nil {
		task, err := resumos.NewRecalcularResumosTask(grupoID)
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue recalc task:", err)
			} else {
				return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Recalculation scheduled"})
			}
		}
	}

	if err := resumos.RecalcularResumos(grupoID); err != nil {
		return utils.HandleError(c, utils.StatusDoErro(err), err.Error())
	}

	return c.JSON(fiber.Map{"message": "Resumos recalculated successfully"})
}
