package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "zoomcreatives_backend/internals/features/clients/client/model"
)

func CreateClient(db *gorm.DB, c *m.ClientModel) error {
	return db.Create(c).Error
}

func FindClientByEmail(db *gorm.DB, email string) (*m.ClientModel, error) {
	var c m.ClientModel
	if err := db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func FindClientByID(db *gorm.DB, id uuid.UUID) (*m.ClientModel, error) {
	var c m.ClientModel
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func ListClients(db *gorm.DB) ([]m.ClientModel, error) {
	var out []m.ClientModel
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func SaveClient(db *gorm.DB, c *m.ClientModel) error {
	return db.Save(c).Error
}

func DeleteClientByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Delete(&m.ClientModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
