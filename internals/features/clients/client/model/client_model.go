package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClientModel is one agency client. The category gates whether the Japanese
// address block is mandatory (see constants.AddressRequired).
type ClientModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Category string    `gorm:"size:50;not null" json:"category"`
	Status   string    `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Phone       string `gorm:"size:30" json:"phone"`
	Nationality string `gorm:"size:100" json:"nationality"`

	// Address block — optional strings; presence enforced by the intake
	// workflow when the category requires it.
	PostalCode string `gorm:"size:10" json:"postalCode"`
	Prefecture string `gorm:"size:50" json:"prefecture"`
	City       string `gorm:"size:100" json:"city"`
	Street     string `gorm:"size:200" json:"street"`
	Building   string `gorm:"size:200" json:"building"`

	ModeOfContact pq.StringArray `gorm:"type:text[]" json:"modeOfContact"`
	FacebookURL   string         `gorm:"size:255" json:"facebookUrl"`
	ProfilePhoto  string         `gorm:"size:512" json:"profilePhoto"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"dateJoined"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ClientModel) TableName() string {
	return "clients"
}
