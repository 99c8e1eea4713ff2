package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/graphicdesign/dto"
	"zoomcreatives_backend/internals/features/applications/graphicdesign/repository"
	"zoomcreatives_backend/internals/features/applications/graphicdesign/service"
	"zoomcreatives_backend/internals/features/applications/snapshot"
	helper "zoomcreatives_backend/internals/helpers"
)

type GraphicDesignController struct {
	DB *gorm.DB
}

func NewGraphicDesignController(db *gorm.DB) *GraphicDesignController {
	return &GraphicDesignController{DB: db}
}

func (ctrl *GraphicDesignController) CreateGraphicDesign(c *fiber.Ctx) error {
	var req dto.CreateGraphicDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	g, err := service.BuildFromCreate(ctrl.DB, req)
	if err != nil {
		return resolutionError(c, err)
	}
	if err := repository.CreateGraphicDesign(ctrl.DB, g); err != nil {
		log.Printf("[ERROR] create graphic design job: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create graphic design job")
	}
	return helper.JsonCreated(c, "Graphic design job created successfully", g)
}

func (ctrl *GraphicDesignController) GetGraphicDesigns(c *fiber.Ctx) error {
	list, err := repository.ListGraphicDesigns(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch graphic design jobs")
	}
	return helper.JsonList(c, "Data fetched", dto.FromModels(list), nil)
}

func (ctrl *GraphicDesignController) GetGraphicDesignByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid job id")
	}
	g, err := repository.FindGraphicDesignByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Graphic design job not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "Data fetched", g)
}

func (ctrl *GraphicDesignController) UpdateGraphicDesign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid job id")
	}
	g, err := repository.FindGraphicDesignByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Graphic design job not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var req dto.UpdateGraphicDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	if err := service.ApplyUpdate(ctrl.DB, g, req); err != nil {
		return resolutionError(c, err)
	}
	if err := repository.SaveGraphicDesign(ctrl.DB, g); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update graphic design job")
	}
	return helper.JsonUpdated(c, "Graphic design job updated successfully", g)
}

func (ctrl *GraphicDesignController) DeleteGraphicDesign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid job id")
	}
	affected, err := repository.DeleteGraphicDesignByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete graphic design job")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Graphic design job not found")
	}
	return helper.JsonDeleted(c, "Graphic design job deleted successfully", fiber.Map{"id": id})
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
