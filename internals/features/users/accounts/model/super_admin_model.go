package model

import (
	"time"

	"github.com/google/uuid"
)

// SuperAdminModel is the owner account store. Role is always superadmin.
type SuperAdminModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;default:'superadmin'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SuperAdminModel) TableName() string {
	return "super_admins"
}

func (a *SuperAdminModel) SetDefaultValues() {
	a.Role = "superadmin"
}
