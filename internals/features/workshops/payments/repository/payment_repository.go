package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reach_backend/internals/features/workshops/payments/dto"
	"reach_backend/internals/features/workshops/payments/model"
)

// ErrNotPending means no PENDING payment carries the transaction id: it is
// unknown, already resolved, or a concurrent resolution won.
var ErrNotPending = errors.New("no pending payment for transaction id")

func ListPendingPayments(ctx context.Context, db *gorm.DB) ([]dto.PendingPaymentRow, error) {
	rows := make([]dto.PendingPaymentRow, 0)
	err := db.WithContext(ctx).
		Table("workshop_payments AS wp").
		Select("u.abacus_id, u.name, u.email, u.mobile, wp.workshop_id, wp.transaction_id, wp.payment_mobile, wp.screenshot").
		Joins("JOIN users AS u ON u.id = wp.user_id").
		Where("wp.status = ?", model.PaymentStatusPending).
		Order("wp.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// ListUnpaidUsers returns users without a SUCCESS or PENDING payment for the workshop.
func ListUnpaidUsers(ctx context.Context, db *gorm.DB, workshopID int) ([]dto.UnpaidUserRow, error) {
	rows := make([]dto.UnpaidUserRow, 0)
	err := db.WithContext(ctx).
		Table("users").
		Select("users.id, users.abacus_id, users.name, users.email, users.mobile").
		Where(`NOT EXISTS (
			SELECT 1 FROM workshop_payments wp
			WHERE wp.user_id = users.id AND wp.workshop_id = ? AND wp.status IN ?
		)`, workshopID, []string{string(model.PaymentStatusSuccess), string(model.PaymentStatusPending)}).
		Order("users.name ASC").
		Scan(&rows).Error
	return rows, err
}

func ListRegistrations(ctx context.Context, db *gorm.DB, workshopID int) ([]dto.RegistrationRow, error) {
	rows := make([]dto.RegistrationRow, 0)
	err := db.WithContext(ctx).
		Table("users").
		Select("users.abacus_id, users.name, users.college, users.email, users.mobile, users.dept, users.year").
		Where("EXISTS (SELECT 1 FROM workshops w WHERE w.user_id = users.id AND w.workshop_id = ?)", workshopID).
		Order("users.name ASC").
		Scan(&rows).Error
	return rows, err
}

func ListWorkshopPayments(ctx context.Context, db *gorm.DB, workshopID int) ([]dto.PaymentListRow, error) {
	rows := make([]dto.PaymentListRow, 0)
	err := db.WithContext(ctx).
		Table("workshop_payments AS wp").
		Select(`u.abacus_id, u.name, u.email, u.mobile, wp.workshop_id, wp.transaction_id,
			wp.payment_mobile, wp.screenshot, a.name AS admin, wp.status`).
		Joins("JOIN users AS u ON u.id = wp.user_id").
		Joins("LEFT JOIN admins AS a ON a.id = wp.verified_by").
		Where("wp.workshop_id = ?", workshopID).
		Order("u.name ASC, wp.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func CreatePayment(ctx context.Context, db *gorm.DB, p *model.WorkshopPaymentModel) error {
	return db.WithContext(ctx).Create(p).Error
}

func CreateEnrollment(ctx context.Context, db *gorm.DB, userID uuid.UUID, workshopID int) (*model.WorkshopModel, error) {
	w := &model.WorkshopModel{UserID: userID, WorkshopID: workshopID}
	if err := db.WithContext(ctx).Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// ResolvePending moves the PENDING payment with transactionID to status in a
// single conditional UPDATE, then loads it. Run it inside a transaction.
func ResolvePending(ctx context.Context, tx *gorm.DB, transactionID string, status model.PaymentStatus, verifiedBy uuid.UUID) (*model.WorkshopPaymentModel, error) {
	res := tx.WithContext(ctx).
		Model(&model.WorkshopPaymentModel{}).
		Where("transaction_id = ? AND status = ?", transactionID, model.PaymentStatusPending).
		Updates(map[string]any{
			"status":      string(status),
			"verified_by": verifiedBy,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotPending
	}

	var p model.WorkshopPaymentModel
	if err := tx.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
