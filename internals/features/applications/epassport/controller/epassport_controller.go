package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/epassport/dto"
	"zoomcreatives_backend/internals/features/applications/epassport/repository"
	"zoomcreatives_backend/internals/features/applications/epassport/service"
	"zoomcreatives_backend/internals/features/applications/snapshot"
	helper "zoomcreatives_backend/internals/helpers"
)

type EpassportController struct {
	DB *gorm.DB
}

func NewEpassportController(db *gorm.DB) *EpassportController {
	return &EpassportController{DB: db}
}

func (ctrl *EpassportController) CreateEpassport(c *fiber.Ctx) error {
	var req dto.CreateEpassportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	e, err := service.BuildFromCreate(ctrl.DB, req)
	if err != nil {
		return resolutionError(c, err)
	}
	if err := repository.CreateEpassport(ctrl.DB, e); err != nil {
		log.Printf("[ERROR] create epassport application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ePassport application")
	}
	return helper.JsonCreated(c, "ePassport application created successfully", e)
}

func (ctrl *EpassportController) GetEpassports(c *fiber.Ctx) error {
	list, err := repository.ListEpassports(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ePassport applications")
	}
	return helper.JsonList(c, "Data fetched", dto.FromModels(list), nil)
}

func (ctrl *EpassportController) GetEpassportByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	e, err := repository.FindEpassportByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ePassport application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "Data fetched", e)
}

func (ctrl *EpassportController) UpdateEpassport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	e, err := repository.FindEpassportByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "ePassport application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var req dto.UpdateEpassportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	if err := service.ApplyUpdate(ctrl.DB, e, req); err != nil {
		return resolutionError(c, err)
	}
	if err := repository.SaveEpassport(ctrl.DB, e); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ePassport application")
	}
	return helper.JsonUpdated(c, "ePassport application updated successfully", e)
}

func (ctrl *EpassportController) DeleteEpassport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	affected, err := repository.DeleteEpassportByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ePassport application")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "ePassport application not found")
	}
	return helper.JsonDeleted(c, "ePassport application deleted successfully", fiber.Map{"id": id})
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
