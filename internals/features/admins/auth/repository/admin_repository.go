package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reach_backend/internals/features/admins/auth/model"
)

// FindAdminByEmail matches case-insensitively; email must already be lowercased.
func FindAdminByEmail(ctx context.Context, db *gorm.DB, email string) (*model.AdminModel, error) {
	var admin model.AdminModel
	if err := db.WithContext(ctx).Where("LOWER(email) = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.AdminModel, error) {
	var admin model.AdminModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func EmailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.AdminModel{}).Where("LOWER(email) = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateAdmin(ctx context.Context, db *gorm.DB, admin *model.AdminModel) error {
	return db.WithContext(ctx).Create(admin).Error
}

func UpdateAdminPassword(ctx context.Context, db *gorm.DB, id uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&model.AdminModel{}).Where("id = ?", id).Update("password", hash).Error
}
