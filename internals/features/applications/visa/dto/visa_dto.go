package dto

import (
	"time"

	"gorm.io/datatypes"

	m "zoomcreatives_backend/internals/features/applications/visa/model"
)

/* =============== REQUESTS =============== */

// CreateVisaApplicationRequest deliberately has no dueAmount or paymentStatus
// fields: both are derived server-side.
type CreateVisaApplicationRequest struct {
	ClientID string `json:"clientId" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,oneof='Visitor Visa' 'Student Visa'"`
	Country  string `json:"country" validate:"required"`

	DocumentStatus       string `json:"documentStatus" validate:"omitempty,oneof='Not Yet' Processing Completed"`
	DocumentsToTranslate int    `json:"documentsToTranslate" validate:"omitempty,min=0"`
	TranslationStatus    string `json:"translationStatus" validate:"omitempty,oneof='Under Process' Completed"`
	VisaStatus           string `json:"visaStatus" validate:"omitempty"`

	VisaApplicationFee int64 `json:"visaApplicationFee" validate:"omitempty,min=0"`
	TranslationFee     int64 `json:"translationFee" validate:"omitempty,min=0"`
	PaidAmount         int64 `json:"paidAmount" validate:"omitempty,min=0"`
	Discount           int64 `json:"discount" validate:"omitempty,min=0"`

	HandledBy          string `json:"handledBy" validate:"required,uuid"`
	TranslationHandler string `json:"translationHandler" validate:"omitempty,uuid"`

	Deadline *time.Time     `json:"deadline"`
	Notes    string         `json:"notes"`
	Todos    datatypes.JSON `json:"todos"`
}

// UpdateVisaApplicationRequest mirrors create but every field is optional.
// Handler fields, when present, are re-resolved against the staff store.
type UpdateVisaApplicationRequest struct {
	Type    *string `json:"type" validate:"omitempty,oneof='Visitor Visa' 'Student Visa'"`
	Country *string `json:"country" validate:"omitempty"`

	DocumentStatus       *string `json:"documentStatus" validate:"omitempty,oneof='Not Yet' Processing Completed"`
	DocumentsToTranslate *int    `json:"documentsToTranslate" validate:"omitempty,min=0"`
	TranslationStatus    *string `json:"translationStatus" validate:"omitempty,oneof='Under Process' Completed"`
	VisaStatus           *string `json:"visaStatus"`

	VisaApplicationFee *int64 `json:"visaApplicationFee" validate:"omitempty,min=0"`
	TranslationFee     *int64 `json:"translationFee" validate:"omitempty,min=0"`
	PaidAmount         *int64 `json:"paidAmount" validate:"omitempty,min=0"`
	Discount           *int64 `json:"discount" validate:"omitempty,min=0"`

	HandledBy          *string `json:"handledBy" validate:"omitempty,uuid"`
	TranslationHandler *string `json:"translationHandler" validate:"omitempty,uuid"`

	Deadline *time.Time      `json:"deadline"`
	Notes    *string         `json:"notes"`
	Todos    *datatypes.JSON `json:"todos"`
}

/* =============== RESPONSES =============== */

func FromModels(list []m.VisaApplicationModel) []m.VisaApplicationModel {
	if list == nil {
		return []m.VisaApplicationModel{}
	}
	return list
}
