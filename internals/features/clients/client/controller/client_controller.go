package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/clients/client/dto"
	"zoomcreatives_backend/internals/features/clients/client/repository"
	"zoomcreatives_backend/internals/features/clients/client/service"
	helper "zoomcreatives_backend/internals/helpers"
	ossHelper "zoomcreatives_backend/internals/helpers/oss"
)

type ClientController struct {
	DB     *gorm.DB
	Intake *service.IntakeService
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db, Intake: service.NewIntakeService()}
}

/* =============== CREATE =============== */

func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ctrl.Intake.EnrichAddress(c.Context(), &req)

	if fieldErrs := req.Validate(constants.AddressRequired(req.Category)); len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := repository.FindClientByEmail(ctrl.DB, email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Client with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	hashed, err := ctrl.Intake.ResolvePassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to secure password")
	}

	newClient := req.ToModel()
	newClient.Password = hashed

	if fh, ferr := c.FormFile("profilePhoto"); ferr == nil && fh != nil {
		url, uerr := ossHelper.UploadProfilePhoto(fh, "clients")
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process profile photo")
		}
		newClient.ProfilePhoto = url
	}

	if err := repository.CreateClient(ctrl.DB, newClient); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Client with this email already exists")
		}
		log.Printf("[ERROR] create client: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create client")
	}

	return helper.JsonCreated(c, "Client created successfully", dto.FromModel(*newClient))
}

/* =============== READ =============== */

func (ctrl *ClientController) GetClients(c *fiber.Ctx) error {
	list, err := repository.ListClients(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clients")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Data fetched",
		"clients": dto.FromModels(list),
	})
}

func (ctrl *ClientController) GetClientByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}
	found, err := repository.FindClientByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonOK(c, "Data fetched", dto.FromModel(*found))
}

/* =============== UPDATE =============== */

func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}
	existing, err := repository.FindClientByID(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ApplyTo(existing)

	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hashed, herr := ctrl.Intake.ResolvePassword(*req.Password)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to secure password")
		}
		existing.Password = hashed
	}

	// Re-run the full intake validation against the merged record so a
	// category switch cannot leave a required address block empty.
	check := dto.CreateClientRequest{
		Name:          existing.Name,
		Category:      existing.Category,
		Status:        existing.Status,
		Email:         existing.Email,
		Phone:         existing.Phone,
		Nationality:   existing.Nationality,
		PostalCode:    existing.PostalCode,
		Prefecture:    existing.Prefecture,
		City:          existing.City,
		Street:        existing.Street,
		Building:      existing.Building,
		FacebookURL:   existing.FacebookURL,
		ModeOfContact: dto.EncodeModes(existing.ModeOfContact),
	}
	if fieldErrs := check.Validate(constants.AddressRequired(existing.Category)); len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	if err := repository.SaveClient(ctrl.DB, existing); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Client with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update client")
	}

	return helper.JsonUpdated(c, "Client updated successfully", dto.FromModel(*existing))
}

/* =============== DELETE =============== */

// DeleteClient removes the account record only. Applications keep their
// clientId and remain readable as historical records.
func (ctrl *ClientController) DeleteClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}
	affected, err := repository.DeleteClientByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete client")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}
	return helper.JsonDeleted(c, "Client deleted successfully", fiber.Map{"id": id})
}
