package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/snapshot"
	"zoomcreatives_backend/internals/features/applications/visa/dto"
	"zoomcreatives_backend/internals/features/applications/visa/repository"
	"zoomcreatives_backend/internals/features/applications/visa/service"
	helper "zoomcreatives_backend/internals/helpers"
)

type VisaController struct {
	DB *gorm.DB
}

func NewVisaController(db *gorm.DB) *VisaController {
	return &VisaController{DB: db}
}

/* =============== CREATE =============== */

func (ctrl *VisaController) CreateVisaApplication(c *fiber.Ctx) error {
	var req dto.CreateVisaApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	v, err := service.BuildFromCreate(ctrl.DB, req)
	if err != nil {
		return resolutionError(c, err)
	}

	if err := repository.CreateVisaApplication(ctrl.DB, v); err != nil {
		log.Printf("[ERROR] create visa application: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create visa application")
	}
	return helper.JsonCreated(c, "Visa application created successfully", v)
}

/* =============== READ =============== */

func (ctrl *VisaController) GetVisaApplications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	list, total, err := repository.ListVisaApplications(ctrl.DB, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch visa applications")
	}
	return helper.JsonList(c, "Data fetched", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *VisaController) GetVisaApplicationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	v, err := repository.FindVisaApplicationByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visa application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "Data fetched", v)
}

/* =============== UPDATE =============== */

func (ctrl *VisaController) UpdateVisaApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	v, err := repository.FindVisaApplicationByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visa application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var req dto.UpdateVisaApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	if err := service.ApplyUpdate(ctrl.DB, v, req); err != nil {
		return resolutionError(c, err)
	}
	if err := repository.SaveVisaApplication(ctrl.DB, v); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update visa application")
	}
	return helper.JsonUpdated(c, "Visa application updated successfully", v)
}

/* =============== DELETE =============== */

func (ctrl *VisaController) DeleteVisaApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	affected, err := repository.DeleteVisaApplicationByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete visa application")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visa application not found")
	}
	return helper.JsonDeleted(c, "Visa application deleted successfully", fiber.Map{"id": id})
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
