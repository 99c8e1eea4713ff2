package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "zoomcreatives_backend/internals/features/applications/epassport/model"
)

func CreateEpassport(db *gorm.DB, e *m.EpassportModel) error {
	return db.Create(e).Error
}

func FindEpassportByID(db *gorm.DB, id uuid.UUID) (*m.EpassportModel, error) {
	var e m.EpassportModel
	if err := db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func ListEpassports(db *gorm.DB) ([]m.EpassportModel, error) {
	var out []m.EpassportModel
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func SaveEpassport(db *gorm.DB, e *m.EpassportModel) error {
	return db.Save(e).Error
}

func DeleteEpassportByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Delete(&m.EpassportModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
