package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is a registrant. Rows are owned by the registration service;
// this backend only reads them.
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	AbacusID string    `gorm:"column:abacus_id;type:varchar(20);not null;uniqueIndex" json:"abacusId"`
	Name     string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email    string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Mobile   string    `gorm:"column:mobile;type:varchar(20)" json:"mobile"`
	College  string    `gorm:"column:college;type:varchar(255)" json:"college"`
	Dept     string    `gorm:"column:dept;type:varchar(100)" json:"dept"`
	Year     int       `gorm:"column:year" json:"year"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
