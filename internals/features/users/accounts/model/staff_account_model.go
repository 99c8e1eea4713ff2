package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccountModel is the "auth" store: agency staff who handle applications.
type StaffAccountModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string     `gorm:"size:100;not null" json:"fullName"`
	Phone       string     `gorm:"size:30;not null" json:"phone"`
	Nationality string     `gorm:"size:100;not null" json:"nationality"`
	Email       string     `gorm:"size:255;unique;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	Status      string     `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StaffAccountModel) TableName() string {
	return "staff_accounts"
}

// SetDefaultValues fills defaults before create.
func (a *StaffAccountModel) SetDefaultValues() {
	if a.Role == "" {
		a.Role = "admin"
	}
	if a.Status == "" {
		a.Status = "active"
	}
}
