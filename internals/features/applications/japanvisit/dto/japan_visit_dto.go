package dto

import (
	"time"

	m "zoomcreatives_backend/internals/features/applications/japanvisit/model"
)

type CreateJapanVisitRequest struct {
	ClientID string `json:"clientId" validate:"required,uuid"`

	Package        string `json:"package" validate:"required,oneof='Standard Package' 'Premium Package'"`
	NoOfApplicants int    `json:"noOfApplicants" validate:"required,min=1"`
	ReasonForVisit string `json:"reasonForVisit" validate:"required,oneof='General Visit' 'Baby Care' 'Program Attendance' Other"`
	OtherReason    string `json:"otherReason"`
	Status         string `json:"status" validate:"omitempty,oneof='In Progress' Completed Cancelled"`

	Amount         int64  `json:"amount" validate:"omitempty,min=0"`
	PaidAmount     int64  `json:"paidAmount" validate:"omitempty,min=0"`
	Discount       int64  `json:"discount" validate:"omitempty,min=0"`
	DeliveryCharge int64  `json:"deliveryCharge" validate:"omitempty,min=0"`
	PaymentMethod  string `json:"paymentMethod" validate:"omitempty,oneof='Bank Furicomy' 'Counter Cash' 'Credit Card' Paypay 'Line Pay'"`
	ModeOfDelivery string `json:"modeOfDelivery" validate:"omitempty,oneof='Office Pickup' PDF 'Normal Delivery' 'Blue Letterpack' 'Red Letterpack'"`

	HandledBy string `json:"handledBy" validate:"required,uuid"`

	Date     *time.Time `json:"date"`
	Deadline *time.Time `json:"deadline"`
	Notes    string     `json:"notes"`
}

type UpdateJapanVisitRequest struct {
	Package        *string `json:"package" validate:"omitempty,oneof='Standard Package' 'Premium Package'"`
	NoOfApplicants *int    `json:"noOfApplicants" validate:"omitempty,min=1"`
	ReasonForVisit *string `json:"reasonForVisit" validate:"omitempty,oneof='General Visit' 'Baby Care' 'Program Attendance' Other"`
	OtherReason    *string `json:"otherReason"`
	Status         *string `json:"status" validate:"omitempty,oneof='In Progress' Completed Cancelled"`

	Amount         *int64  `json:"amount" validate:"omitempty,min=0"`
	PaidAmount     *int64  `json:"paidAmount" validate:"omitempty,min=0"`
	Discount       *int64  `json:"discount" validate:"omitempty,min=0"`
	DeliveryCharge *int64  `json:"deliveryCharge" validate:"omitempty,min=0"`
	PaymentMethod  *string `json:"paymentMethod" validate:"omitempty,oneof='Bank Furicomy' 'Counter Cash' 'Credit Card' Paypay 'Line Pay'"`
	ModeOfDelivery *string `json:"modeOfDelivery" validate:"omitempty,oneof='Office Pickup' PDF 'Normal Delivery' 'Blue Letterpack' 'Red Letterpack'"`

	HandledBy *string `json:"handledBy" validate:"omitempty,uuid"`

	Date     *time.Time `json:"date"`
	Deadline *time.Time `json:"deadline"`
	Notes    *string    `json:"notes"`
}

func FromModels(list []m.JapanVisitModel) []m.JapanVisitModel {
	if list == nil {
		return []m.JapanVisitModel{}
	}
	return list
}
