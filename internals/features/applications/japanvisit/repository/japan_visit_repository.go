package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "zoomcreatives_backend/internals/features/applications/japanvisit/model"
)

func CreateJapanVisit(db *gorm.DB, j *m.JapanVisitModel) error {
	return db.Create(j).Error
}

func FindJapanVisitByID(db *gorm.DB, id uuid.UUID) (*m.JapanVisitModel, error) {
	var j m.JapanVisitModel
	if err := db.First(&j, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func ListJapanVisits(db *gorm.DB) ([]m.JapanVisitModel, error) {
	var out []m.JapanVisitModel
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func SaveJapanVisit(db *gorm.DB, j *m.JapanVisitModel) error {
	return db.Save(j).Error
}

func DeleteJapanVisitByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Delete(&m.JapanVisitModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
