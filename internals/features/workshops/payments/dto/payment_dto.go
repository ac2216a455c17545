package dto

import (
	"github.com/google/uuid"

	"reach_backend/internals/features/workshops/payments/model"
)

/* ===================== Requests ===================== */

type CashPaymentRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	WorkshopID int    `json:"workshopId" validate:"required,gt=0"`
}

type ResolvePaymentRequest struct {
	TransactionID string `json:"transactionId" validate:"required,max=100"`
}

/* ===================== Rows ===================== */

// PendingPaymentRow is one PENDING payment flattened with its payer.
type PendingPaymentRow struct {
	AbacusID      string `gorm:"column:abacus_id" json:"abacusId"`
	Name          string `gorm:"column:name" json:"name"`
	Email         string `gorm:"column:email" json:"email"`
	Mobile        string `gorm:"column:mobile" json:"mobile"`
	WorkshopID    int    `gorm:"column:workshop_id" json:"workshopId"`
	WorkshopName  string `gorm:"-" json:"workshopName"`
	TransactionID string `gorm:"column:transaction_id" json:"transactionId"`
	PaymentMobile string `gorm:"column:payment_mobile" json:"paymentMobile"`
	Screenshot    string `gorm:"column:screenshot" json:"screenshot"`
}

type UnpaidUserRow struct {
	ID       uuid.UUID `gorm:"column:id" json:"id"`
	AbacusID string    `gorm:"column:abacus_id" json:"abacusId"`
	Name     string    `gorm:"column:name" json:"name"`
	Email    string    `gorm:"column:email" json:"email"`
	Mobile   string    `gorm:"column:mobile" json:"mobile"`
}

type RegistrationRow struct {
	AbacusID string `gorm:"column:abacus_id" json:"abacusId"`
	Name     string `gorm:"column:name" json:"name"`
	College  string `gorm:"column:college" json:"college"`
	Email    string `gorm:"column:email" json:"email"`
	Mobile   string `gorm:"column:mobile" json:"mobile"`
	Dept     string `gorm:"column:dept" json:"dept"`
	Year     int    `gorm:"column:year" json:"year"`
}

// PaymentListRow is one payment attempt; Admin is the verifier's name, nil until verified.
type PaymentListRow struct {
	AbacusID      string              `gorm:"column:abacus_id" json:"abacusId"`
	Name          string              `gorm:"column:name" json:"name"`
	Email         string              `gorm:"column:email" json:"email"`
	Mobile        string              `gorm:"column:mobile" json:"mobile"`
	WorkshopID    int                 `gorm:"column:workshop_id" json:"workshopId"`
	WorkshopName  string              `gorm:"-" json:"workshopName"`
	TransactionID string              `gorm:"column:transaction_id" json:"transactionId"`
	PaymentMobile string              `gorm:"column:payment_mobile" json:"paymentMobile"`
	Screenshot    string              `gorm:"column:screenshot" json:"screenshot"`
	Admin         *string             `gorm:"column:admin" json:"admin,omitempty"`
	Status        model.PaymentStatus `gorm:"column:status" json:"status"`
}

/* ===================== Responses ===================== */

type PaymentResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"userId"`
	WorkshopID    int                 `json:"workshopId"`
	TransactionID string              `json:"transactionId"`
	Status        model.PaymentStatus `json:"status"`
}

func FromModel(p *model.WorkshopPaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		WorkshopID:    p.WorkshopID,
		TransactionID: p.TransactionID,
		Status:        p.Status,
	}
}
