package service

import (
	"gorm.io/gorm"

	"zoomcreatives_backend/internals/features/applications/graphicdesign/dto"
	m "zoomcreatives_backend/internals/features/applications/graphicdesign/model"
	"zoomcreatives_backend/internals/features/applications/payment"
	"zoomcreatives_backend/internals/features/applications/snapshot"
)

func Recompute(g *m.GraphicDesignModel) {
	g.DueAmount = payment.ComputeDueAmount([]int64{g.Amount}, g.AdvancePaid, g.Discount)
	g.PaymentStatus = payment.DeriveStatus(g.DueAmount)
}

func BuildFromCreate(db *gorm.DB, req dto.CreateGraphicDesignRequest) (*m.GraphicDesignModel, error) {
	clientID, clientName, err := snapshot.ResolveClient(db, req.ClientID)
	if err != nil {
		return nil, err
	}
	handlerID, handlerName, err := snapshot.ResolveHandler(db, req.HandledBy)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "In Progress"
	}

	g := &m.GraphicDesignModel{
		ClientID:     clientID,
		ClientName:   clientName,
		BusinessName: req.BusinessName,
		MobileNo:     req.MobileNo,
		LandlineNo:   req.LandlineNo,
		Address:      req.Address,
		DesignType:   req.DesignType,
		Amount:       req.Amount,
		AdvancePaid:  req.AdvancePaid,
		Discount:     req.Discount,
		Status:       status,
		HandledBy:    handlerName,
		HandledByID:  handlerID,
		Deadline:     req.Deadline,
		Remarks:      req.Remarks,
	}

	Recompute(g)
	return g, nil
}

func ApplyUpdate(db *gorm.DB, g *m.GraphicDesignModel, req dto.UpdateGraphicDesignRequest) error {
	if req.BusinessName != nil {
		g.BusinessName = *req.BusinessName
	}
	if req.MobileNo != nil {
		g.MobileNo = *req.MobileNo
	}
	if req.LandlineNo != nil {
		g.LandlineNo = *req.LandlineNo
	}
	if req.Address != nil {
		g.Address = *req.Address
	}
	if req.DesignType != nil {
		g.DesignType = *req.DesignType
	}
	if req.Amount != nil {
		g.Amount = *req.Amount
	}
	if req.AdvancePaid != nil {
		g.AdvancePaid = *req.AdvancePaid
	}
	if req.Discount != nil {
		g.Discount = *req.Discount
	}
	if req.Status != nil {
		g.Status = *req.Status
	}
	if req.Deadline != nil {
		g.Deadline = req.Deadline
	}
	if req.Remarks != nil {
		g.Remarks = *req.Remarks
	}

	if req.HandledBy != nil {
		id, name, err := snapshot.ResolveHandler(db, *req.HandledBy)
		if err != nil {
			return err
		}
		g.HandledBy = name
		g.HandledByID = id
	}

	Recompute(g)
	return nil
}
