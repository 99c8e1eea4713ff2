package service

import (
	"time"

	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/payment"
	"zoomcreatives_backend/internals/features/applications/snapshot"
	"zoomcreatives_backend/internals/features/applications/visa/dto"
	m "zoomcreatives_backend/internals/features/applications/visa/model"
)

// Recompute refreshes both derived payment fields from the fee columns.
// Running it twice on an unchanged record changes nothing.
func Recompute(v *m.VisaApplicationModel) {
	v.DueAmount = payment.ComputeDueAmount(
		[]int64{v.VisaApplicationFee, v.TranslationFee},
		v.PaidAmount, v.Discount,
	)
	v.PaymentStatus = payment.DeriveStatus(v.DueAmount)
}

// BuildFromCreate resolves the client and handler references, snapshots their
// display names, and derives the payment fields.
func BuildFromCreate(db *gorm.DB, req dto.CreateVisaApplicationRequest) (*m.VisaApplicationModel, error) {
	clientID, clientName, err := snapshot.ResolveClient(db, req.ClientID)
	if err != nil {
		return nil, err
	}
	handlerID, handlerName, err := snapshot.ResolveHandler(db, req.HandledBy)
	if err != nil {
		return nil, err
	}

	v := &m.VisaApplicationModel{
		ClientID:             clientID,
		ClientName:           clientName,
		Type:                 req.Type,
		Country:              req.Country,
		DocumentStatus:       defaultStr(req.DocumentStatus, "Not Yet"),
		DocumentsToTranslate: req.DocumentsToTranslate,
		TranslationStatus:    defaultStr(req.TranslationStatus, "Under Process"),
		VisaStatus:           defaultStr(req.VisaStatus, "Under Review"),
		VisaApplicationFee:   req.VisaApplicationFee,
		TranslationFee:       req.TranslationFee,
		PaidAmount:           req.PaidAmount,
		Discount:             req.Discount,
		HandledBy:            handlerName,
		HandledByID:          handlerID,
		Deadline:             req.Deadline,
		SubmissionDate:       time.Now(),
		Notes:                req.Notes,
		Todos:                req.Todos,
	}

	if req.TranslationHandler != "" {
		thID, thName, err := snapshot.ResolveHandler(db, req.TranslationHandler)
		if err != nil {
			return nil, err
		}
		v.TranslationHandler = thName
		v.TranslationHandlerID = &thID
	}

	Recompute(v)
	return v, nil
}

// ApplyUpdate merges the set fields onto the record, re-resolving handler
// references, then recomputes the derived payment fields.
func ApplyUpdate(db *gorm.DB, v *m.VisaApplicationModel, req dto.UpdateVisaApplicationRequest) error {
	if req.Type != nil {
		v.Type = *req.Type
	}
	if req.Country != nil {
		v.Country = *req.Country
	}
	if req.DocumentStatus != nil {
		v.DocumentStatus = *req.DocumentStatus
	}
	if req.DocumentsToTranslate != nil {
		v.DocumentsToTranslate = *req.DocumentsToTranslate
	}
	if req.TranslationStatus != nil {
		v.TranslationStatus = *req.TranslationStatus
	}
	if req.VisaStatus != nil {
		v.VisaStatus = *req.VisaStatus
	}
	if req.VisaApplicationFee != nil {
		v.VisaApplicationFee = *req.VisaApplicationFee
	}
	if req.TranslationFee != nil {
		v.TranslationFee = *req.TranslationFee
	}
	if req.PaidAmount != nil {
		v.PaidAmount = *req.PaidAmount
	}
	if req.Discount != nil {
		v.Discount = *req.Discount
	}
	if req.Deadline != nil {
		v.Deadline = req.Deadline
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}
	if req.Todos != nil {
		v.Todos = *req.Todos
	}

	if req.HandledBy != nil {
		id, name, err := snapshot.ResolveHandler(db, *req.HandledBy)
		if err != nil {
			return err
		}
		v.HandledBy = name
		v.HandledByID = id
	}
	if req.TranslationHandler != nil {
		if *req.TranslationHandler == "" {
			v.TranslationHandler = ""
			v.TranslationHandlerID = nil
		} else {
			id, name, err := snapshot.ResolveHandler(db, *req.TranslationHandler)
			if err != nil {
				return err
			}
			v.TranslationHandler = name
			v.TranslationHandlerID = &id
		}
	}

	Recompute(v)
	return nil
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
