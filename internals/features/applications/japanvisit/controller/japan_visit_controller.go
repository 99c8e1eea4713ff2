package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/japanvisit/dto"
	"zoomcreatives_backend/internals/features/applications/japanvisit/repository"
	"zoomcreatives_backend/internals/features/applications/japanvisit/service"
	"zoomcreatives_backend/internals/features/applications/snapshot"
	helper "zoomcreatives_backend/internals/helpers"
)

type JapanVisitController struct {
	DB *gorm.DB
}

func NewJapanVisitController(db *gorm.DB) *JapanVisitController {
	return &JapanVisitController{DB: db}
}

func (ctrl *JapanVisitController) CreateJapanVisit(c *fiber.Ctx) error {
	var req dto.CreateJapanVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	j, err := service.BuildFromCreate(ctrl.DB, req)
	if err != nil {
		return resolutionError(c, err)
	}
	if err := repository.CreateJapanVisit(ctrl.DB, j); err != nil {
		log.Printf("[ERROR] create japan visit application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Japan visit application")
	}
	return helper.JsonCreated(c, "Japan visit application created successfully", j)
}

func (ctrl *JapanVisitController) GetJapanVisits(c *fiber.Ctx) error {
	list, err := repository.ListJapanVisits(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch Japan visit applications")
	}
	return helper.JsonList(c, "Data fetched", dto.FromModels(list), nil)
}

func (ctrl *JapanVisitController) GetJapanVisitByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	j, err := repository.FindJapanVisitByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Japan visit application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "Data fetched", j)
}

func (ctrl *JapanVisitController) UpdateJapanVisit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	j, err := repository.FindJapanVisitByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Japan visit application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var req dto.UpdateJapanVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	if err := service.ApplyUpdate(ctrl.DB, j, req); err != nil {
		return resolutionError(c, err)
	}
	if err := repository.SaveJapanVisit(ctrl.DB, j); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update Japan visit application")
	}
	return helper.JsonUpdated(c, "Japan visit application updated successfully", j)
}

func (ctrl *JapanVisitController) DeleteJapanVisit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	affected, err := repository.DeleteJapanVisitByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete Japan visit application")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Japan visit application not found")
	}
	return helper.JsonDeleted(c, "Japan visit application deleted successfully", fiber.Map{"id": id})
}

func resolutionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, snapshot.ErrClientNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, "Client not found")
	case errors.Is(err, snapshot.ErrInvalidHandler):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid handler selected")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
}
