package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "zoomcreatives_backend/internals/features/applications/visa/model"
)

func CreateVisaApplication(db *gorm.DB, v *m.VisaApplicationModel) error {
	return db.Create(v).Error
}

func FindVisaApplicationByID(db *gorm.DB, id uuid.UUID) (*m.VisaApplicationModel, error) {
	var v m.VisaApplicationModel
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func ListVisaApplications(db *gorm.DB, limit, offset int) ([]m.VisaApplicationModel, int64, error) {
	var total int64
	if err := db.Model(&m.VisaApplicationModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []m.VisaApplicationModel
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func SaveVisaApplication(db *gorm.DB, v *m.VisaApplicationModel) error {
	return db.Save(v).Error
}

func DeleteVisaApplicationByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Delete(&m.VisaApplicationModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
