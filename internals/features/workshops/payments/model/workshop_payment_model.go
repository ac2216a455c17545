package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailure PaymentStatus = "FAILURE"
)

// CashMarker fills payment_mobile, and prefixes screenshot and transaction_id,
// for payments collected in person.
const CashMarker = "CASH"

// WorkshopPaymentModel is one payment attempt. Status leaves PENDING at most once.
type WorkshopPaymentModel struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	WorkshopID    int           `gorm:"column:workshop_id;not null;index" json:"workshopId"`
	PaymentMobile string        `gorm:"column:payment_mobile;type:varchar(20);not null" json:"paymentMobile"`
	Screenshot    string        `gorm:"column:screenshot;type:varchar(255);not null" json:"screenshot"`
	TransactionID string        `gorm:"column:transaction_id;type:varchar(100);not null;uniqueIndex" json:"transactionId"`
	Status        PaymentStatus `gorm:"column:status;type:varchar(10);not null;default:'PENDING';index" json:"status"`
	VerifiedBy    *uuid.UUID    `gorm:"column:verified_by;type:uuid" json:"verifiedBy,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (WorkshopPaymentModel) TableName() string { return "workshop_payments" }

func (p *WorkshopPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsCash reports whether the payment was collected in person.
func (p *WorkshopPaymentModel) IsCash() bool {
	return p.PaymentMobile == CashMarker
}

// WorkshopModel is a confirmed enrollment of a user in a workshop.
type WorkshopModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	WorkshopID int       `gorm:"column:workshop_id;not null;index" json:"workshopId"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (WorkshopModel) TableName() string { return "workshops" }

func (w *WorkshopModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
