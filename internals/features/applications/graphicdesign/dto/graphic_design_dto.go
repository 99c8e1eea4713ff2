package dto

import (
	"time"

	m "zoomcreatives_backend/internals/features/applications/graphicdesign/model"
)

type CreateGraphicDesignRequest struct {
	ClientID     string `json:"clientId" validate:"required,uuid"`
	BusinessName string `json:"businessName" validate:"required"`
	MobileNo     string `json:"mobileNo" validate:"required"`
	LandlineNo   string `json:"landlineNo"`
	Address      string `json:"address"`
	DesignType   string `json:"designType" validate:"required"`

	Amount      int64 `json:"amount" validate:"omitempty,min=0"`
	AdvancePaid int64 `json:"advancePaid" validate:"omitempty,min=0"`
	Discount    int64 `json:"discount" validate:"omitempty,min=0"`

	Status    string `json:"status" validate:"omitempty,oneof='In Progress' Completed Cancelled"`
	HandledBy string `json:"handledBy" validate:"required,uuid"`

	Deadline *time.Time `json:"deadline"`
	Remarks  string     `json:"remarks"`
}

type UpdateGraphicDesignRequest struct {
	BusinessName *string `json:"businessName"`
	MobileNo     *string `json:"mobileNo"`
	LandlineNo   *string `json:"landlineNo"`
	Address      *string `json:"address"`
	DesignType   *string `json:"designType"`

	Amount      *int64 `json:"amount" validate:"omitempty,min=0"`
	AdvancePaid *int64 `json:"advancePaid" validate:"omitempty,min=0"`
	Discount    *int64 `json:"discount" validate:"omitempty,min=0"`

	Status    *string `json:"status" validate:"omitempty,oneof='In Progress' Completed Cancelled"`
	HandledBy *string `json:"handledBy" validate:"omitempty,uuid"`

	Deadline *time.Time `json:"deadline"`
	Remarks  *string    `json:"remarks"`
}

func FromModels(list []m.GraphicDesignModel) []m.GraphicDesignModel {
	if list == nil {
		return []m.GraphicDesignModel{}
	}
	return list
}
