package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAdmin is the only role this backend issues.
const RoleAdmin = "ADMIN"

type AdminModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email    string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string    `gorm:"column:password;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (AdminModel) TableName() string { return "admins" }

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
