package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reach_backend/internals/features/queries/model"
)

// ListUnreplied returns queries waiting for a reply, oldest first.
func ListUnreplied(ctx context.Context, db *gorm.DB) ([]model.QueryModel, error) {
	var list []model.QueryModel
	err := db.WithContext(ctx).
		Where("replied = ?", false).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// MarkReplied sets replied on the query. gorm.ErrRecordNotFound when id is unknown.
func MarkReplied(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var q model.QueryModel
	if err := db.WithContext(ctx).Select("id", "replied").Where("id = ?", id).First(&q).Error; err != nil {
		return err
	}
	if q.Replied {
		return nil
	}
	return db.WithContext(ctx).
		Model(&model.QueryModel{}).
		Where("id = ?", id).
		Update("replied", true).Error
}
