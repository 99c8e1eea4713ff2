package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/requests/servicerequest/dto"
	m "zoomcreatives_backend/internals/features/requests/servicerequest/model"
	helper "zoomcreatives_backend/internals/helpers"
)

type ServiceRequestController struct {
	DB *gorm.DB
}

func NewServiceRequestController(db *gorm.DB) *ServiceRequestController {
	return &ServiceRequestController{DB: db}
}

// CreateServiceRequest is the public website intake; no auth.
func (ctrl *ServiceRequestController) CreateServiceRequest(c *fiber.Ctx) error {
	var req dto.CreateServiceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	sr := req.ToModel()
	if err := ctrl.DB.Create(sr).Error; err != nil {
		log.Printf("[ERROR] create service request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit service request")
	}
	return helper.JsonCreated(c, "Service request submitted successfully", sr)
}

func (ctrl *ServiceRequestController) GetServiceRequests(c *fiber.Ctx) error {
	var list []m.ServiceRequestModel
	if err := ctrl.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch service requests")
	}
	return helper.JsonList(c, "Data fetched", dto.FromModels(list), nil)
}

// UpdateServiceRequestStatus moves a pending request to approved or rejected.
func (ctrl *ServiceRequestController) UpdateServiceRequestStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.UpdateServiceRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, "Validation failed", fieldErrs)
	}

	var sr m.ServiceRequestModel
	if err := ctrl.DB.First(&sr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if sr.Status != m.StatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Service request already processed")
	}

	sr.Status = req.Status
	if err := ctrl.DB.Save(&sr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update service request")
	}
	return helper.JsonUpdated(c, "Service request updated successfully", sr)
}

func (ctrl *ServiceRequestController) DeleteServiceRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request id")
	}
	res := ctrl.DB.Delete(&m.ServiceRequestModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete service request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Service request not found")
	}
	return helper.JsonDeleted(c, "Service request deleted successfully", fiber.Map{"id": id})
}
