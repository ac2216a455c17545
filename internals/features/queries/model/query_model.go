package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QueryModel is a support message sent from the public site.
type QueryModel struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email   string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Mobile  string    `gorm:"column:mobile;type:varchar(20)" json:"mobile"`
	Query   string    `gorm:"column:query;type:text;not null" json:"query"`
	Replied bool      `gorm:"column:replied;not null;default:false;index" json:"replied"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (QueryModel) TableName() string { return "queries" }

func (q *QueryModel) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
