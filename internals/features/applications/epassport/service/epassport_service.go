package service

import (
	"time"

	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/epassport/dto"
	m "zoomcreatives_backend/internals/features/applications/epassport/model"
	"zoomcreatives_backend/internals/features/applications/payment"
	"zoomcreatives_backend/internals/features/applications/snapshot"
)

func Recompute(e *m.EpassportModel) {
	e.DueAmount = payment.ComputeDueAmount([]int64{e.Amount}, e.PaidAmount, e.Discount)
	e.PaymentStatus = payment.DeriveStatus(e.DueAmount)
}

func BuildFromCreate(db *gorm.DB, req dto.CreateEpassportRequest) (*m.EpassportModel, error) {
	clientID, clientName, err := snapshot.ResolveClient(db, req.ClientID)
	if err != nil {
		return nil, err
	}
	handlerID, handlerName, err := snapshot.ResolveHandler(db, req.HandledBy)
	if err != nil {
		return nil, err
	}

	e := &m.EpassportModel{
		ClientID:        clientID,
		ClientName:      clientName,
		ApplicationType: req.ApplicationType,
		GhumtiService:   req.GhumtiService,
		Prefecture:      req.Prefecture,
		Amount:          req.Amount,
		PaidAmount:      req.PaidAmount,
		Discount:        req.Discount,
		HandledBy:       handlerName,
		HandledByID:     handlerID,
		Deadline:        req.Deadline,
		SubmissionDate:  time.Now(),
		Notes:           req.Notes,
		Todos:           req.Todos,
	}
	if !e.GhumtiService {
		e.Prefecture = ""
	}

	Recompute(e)
	return e, nil
}

func ApplyUpdate(db *gorm.DB, e *m.EpassportModel, req dto.UpdateEpassportRequest) error {
	if req.ApplicationType != nil {
		e.ApplicationType = *req.ApplicationType
	}
	if req.GhumtiService != nil {
		e.GhumtiService = *req.GhumtiService
	}
	if req.Prefecture != nil {
		e.Prefecture = *req.Prefecture
	}
	if !e.GhumtiService {
		e.Prefecture = ""
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.PaidAmount != nil {
		e.PaidAmount = *req.PaidAmount
	}
	if req.Discount != nil {
		e.Discount = *req.Discount
	}
	if req.Deadline != nil {
		e.Deadline = req.Deadline
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	if req.Todos != nil {
		e.Todos = *req.Todos
	}

	if req.HandledBy != nil {
		id, name, err := snapshot.ResolveHandler(db, *req.HandledBy)
		if err != nil {
			return err
		}
		e.HandledBy = name
		e.HandledByID = id
	}

	Recompute(e)
	return nil
}
