package model

import (
	"time"

	"github.com/google/uuid"
)

// GraphicDesignModel is a design/printing job for a client's business.
type GraphicDesignModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"clientId"`
	ClientName string    `gorm:"size:150;not null" json:"clientName"`

	BusinessName string `gorm:"size:150;not null" json:"businessName"`
	MobileNo     string `gorm:"size:30" json:"mobileNo"`
	LandlineNo   string `gorm:"size:30" json:"landlineNo"`
	Address      string `gorm:"size:255" json:"address"`
	DesignType   string `gorm:"size:100;not null" json:"designType"`

	Amount        int64  `gorm:"not null;default:0" json:"amount"`
	AdvancePaid   int64  `gorm:"not null;default:0" json:"advancePaid"`
	Discount      int64  `gorm:"not null;default:0" json:"discount"`
	DueAmount     int64  `gorm:"not null;default:0" json:"dueAmount"`
	PaymentStatus string `gorm:"size:10;not null;default:'Due'" json:"paymentStatus"`

	Status string `gorm:"size:20;not null;default:'In Progress'" json:"status"`

	HandledBy   string    `gorm:"size:150" json:"handledBy"`
	HandledByID uuid.UUID `gorm:"type:uuid" json:"handledById"`

	Deadline *time.Time `json:"deadline,omitempty"`
	Remarks  string     `gorm:"type:text" json:"remarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GraphicDesignModel) TableName() string {
	return "graphic_design_jobs"
}
