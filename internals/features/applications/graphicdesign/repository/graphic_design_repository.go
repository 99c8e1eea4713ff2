package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "zoomcreatives_backend/internals/features/applications/graphicdesign/model"
)

func CreateGraphicDesign(db *gorm.DB, g *m.GraphicDesignModel) error {
	return db.Create(g).Error
}

func FindGraphicDesignByID(db *gorm.DB, id uuid.UUID) (*m.GraphicDesignModel, error) {
	var g m.GraphicDesignModel
	if err := db.First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func ListGraphicDesigns(db *gorm.DB) ([]m.GraphicDesignModel, error) {
	var out []m.GraphicDesignModel
	if err := db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func SaveGraphicDesign(db *gorm.DB, g *m.GraphicDesignModel) error {
	return db.Save(g).Error
}

func DeleteGraphicDesignByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Delete(&m.GraphicDesignModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
