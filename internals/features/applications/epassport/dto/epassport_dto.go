package dto

import (
	"time"

	"gorm.io/datatypes"

	m "zoomcreatives_backend/internals/features/applications/epassport/model"
)

type CreateEpassportRequest struct {
	ClientID        string `json:"clientId" validate:"required,uuid"`
	ApplicationType string `json:"applicationType" validate:"required"`
	GhumtiService   bool   `json:"ghumtiService"`
	Prefecture      string `json:"prefecture" validate:"required_if=GhumtiService true"`

	Amount     int64 `json:"amount" validate:"omitempty,min=0"`
	PaidAmount int64 `json:"paidAmount" validate:"omitempty,min=0"`
	Discount   int64 `json:"discount" validate:"omitempty,min=0"`

	HandledBy string `json:"handledBy" validate:"required,uuid"`

	Deadline *time.Time     `json:"deadline"`
	Notes    string         `json:"notes"`
	Todos    datatypes.JSON `json:"todos"`
}

type UpdateEpassportRequest struct {
	ApplicationType *string `json:"applicationType"`
	GhumtiService   *bool   `json:"ghumtiService"`
	Prefecture      *string `json:"prefecture"`

	Amount     *int64 `json:"amount" validate:"omitempty,min=0"`
	PaidAmount *int64 `json:"paidAmount" validate:"omitempty,min=0"`
	Discount   *int64 `json:"discount" validate:"omitempty,min=0"`

	HandledBy *string `json:"handledBy" validate:"omitempty,uuid"`

	Deadline *time.Time      `json:"deadline"`
	Notes    *string         `json:"notes"`
	Todos    *datatypes.JSON `json:"todos"`
}

func FromModels(list []m.EpassportModel) []m.EpassportModel {
	if list == nil {
		return []m.EpassportModel{}
	}
	return list
}
