package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "zoomcreatives_backend/internals/features/clients/client/model"
	m "zoomcreatives_backend/internals/features/users/accounts/model"
)

/* ===== staff_accounts ===== */

func CreateStaff(db *gorm.DB, account *m.StaffAccountModel) error {
	return db.Create(account).Error
}

func FindStaffByEmail(db *gorm.DB, email string) (*m.StaffAccountModel, error) {
	var account m.StaffAccountModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func FindStaffByID(db *gorm.DB, id uuid.UUID) (*m.StaffAccountModel, error) {
	var account m.StaffAccountModel
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func ListStaff(db *gorm.DB) ([]m.StaffAccountModel, error) {
	var accounts []m.StaffAccountModel
	if err := db.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func UpdateStaffPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&m.StaffAccountModel{}).Where("id = ?", id).
		Update("password", hash).Error
}

func TouchStaffLastLogin(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&m.StaffAccountModel{}).Where("id = ?", id).
		Update("last_login", gorm.Expr("NOW()")).Error
}

/* ===== super_admins ===== */

func CreateSuperAdmin(db *gorm.DB, account *m.SuperAdminModel) error {
	return db.Create(account).Error
}

func FindSuperAdminByEmail(db *gorm.DB, email string) (*m.SuperAdminModel, error) {
	var account m.SuperAdminModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

/* ===== clients (login + admin re-check only) ===== */

func FindClientByEmail(db *gorm.DB, email string) (*clientModel.ClientModel, error) {
	var client clientModel.ClientModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}
