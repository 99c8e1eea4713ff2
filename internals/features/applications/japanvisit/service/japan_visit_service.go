package service

import (
	"time"

	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/japanvisit/dto"
	m "zoomcreatives_backend/internals/features/applications/japanvisit/model"
	"zoomcreatives_backend/internals/features/applications/payment"
	"zoomcreatives_backend/internals/features/applications/snapshot"
)

// Recompute derives due and status. The delivery charge counts as a fee on
// top of the package amount.
func Recompute(j *m.JapanVisitModel) {
	j.DueAmount = payment.ComputeDueAmount(
		[]int64{j.Amount, j.DeliveryCharge},
		j.PaidAmount, j.Discount,
	)
	j.PaymentStatus = payment.DeriveStatus(j.DueAmount)
}

func BuildFromCreate(db *gorm.DB, req dto.CreateJapanVisitRequest) (*m.JapanVisitModel, error) {
	clientID, clientName, clientPhone, err := snapshot.ResolveClientContact(db, req.ClientID)
	if err != nil {
		return nil, err
	}
	handlerID, handlerName, err := snapshot.ResolveHandler(db, req.HandledBy)
	if err != nil {
		return nil, err
	}

	j := &m.JapanVisitModel{
		ClientID:       clientID,
		ClientName:     clientName,
		MobileNo:       clientPhone,
		Package:        req.Package,
		NoOfApplicants: req.NoOfApplicants,
		ReasonForVisit: req.ReasonForVisit,
		OtherReason:    req.OtherReason,
		Status:         defaultStr(req.Status, "In Progress"),
		Amount:         req.Amount,
		PaidAmount:     req.PaidAmount,
		Discount:       req.Discount,
		DeliveryCharge: req.DeliveryCharge,
		PaymentMethod:  req.PaymentMethod,
		ModeOfDelivery: defaultStr(req.ModeOfDelivery, "Office Pickup"),
		HandledBy:      handlerName,
		HandledByID:    handlerID,
		Date:           req.Date,
		Deadline:       req.Deadline,
		SubmissionDate: time.Now(),
		Notes:          req.Notes,
	}
	if j.ReasonForVisit != "Other" {
		j.OtherReason = ""
	}

	Recompute(j)
	return j, nil
}

func ApplyUpdate(db *gorm.DB, j *m.JapanVisitModel, req dto.UpdateJapanVisitRequest) error {
	if req.Package != nil {
		j.Package = *req.Package
	}
	if req.NoOfApplicants != nil {
		j.NoOfApplicants = *req.NoOfApplicants
	}
	if req.ReasonForVisit != nil {
		j.ReasonForVisit = *req.ReasonForVisit
	}
	if req.OtherReason != nil {
		j.OtherReason = *req.OtherReason
	}
	if j.ReasonForVisit != "Other" {
		j.OtherReason = ""
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	if req.Amount != nil {
		j.Amount = *req.Amount
	}
	if req.PaidAmount != nil {
		j.PaidAmount = *req.PaidAmount
	}
	if req.Discount != nil {
		j.Discount = *req.Discount
	}
	if req.DeliveryCharge != nil {
		j.DeliveryCharge = *req.DeliveryCharge
	}
	if req.PaymentMethod != nil {
		j.PaymentMethod = *req.PaymentMethod
	}
	if req.ModeOfDelivery != nil {
		j.ModeOfDelivery = *req.ModeOfDelivery
	}
	if req.Date != nil {
		j.Date = req.Date
	}
	if req.Deadline != nil {
		j.Deadline = req.Deadline
	}
	if req.Notes != nil {
		j.Notes = *req.Notes
	}

	if req.HandledBy != nil {
		id, name, err := snapshot.ResolveHandler(db, *req.HandledBy)
		if err != nil {
			return err
		}
		j.HandledBy = name
		j.HandledByID = id
	}

	Recompute(j)
	return nil
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
