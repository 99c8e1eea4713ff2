package dto

import (
	m "zoomcreatives_backend/internals/features/requests/servicerequest/model"
)

type CreateServiceRequestRequest struct {
	ClientName  string `json:"clientName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	ServiceName string `json:"serviceName" validate:"required"`
	Message     string `json:"message"`
}

func (r CreateServiceRequestRequest) ToModel() *m.ServiceRequestModel {
	return &m.ServiceRequestModel{
		ClientName:  r.ClientName,
		PhoneNumber: r.PhoneNumber,
		ServiceName: r.ServiceName,
		Message:     r.Message,
		Status:      m.StatusPending,
	}
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func FromModels(list []m.ServiceRequestModel) []m.ServiceRequestModel {
	if list == nil {
		return []m.ServiceRequestModel{}
	}
	return list
}
