package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reach_backend/internals/features/users/model"
)

func FindUserByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
