package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	userRepo "reach_backend/internals/features/users/repository"
	"reach_backend/internals/features/workshops/catalog"
	"reach_backend/internals/features/workshops/payments/dto"
	"reach_backend/internals/features/workshops/payments/model"
	"reach_backend/internals/features/workshops/payments/repository"
	"reach_backend/internals/helpers"
	"reach_backend/internals/metrics"
	"reach_backend/internals/services/mailer"
)

type Notifier interface {
	Notify(ctx context.Context, msg mailer.Message) bool
}

// Catalog resolves workshop ids to display names.
type Catalog interface {
	Load() (catalog.Names, error)
}

// ArtifactStore removes uploaded payment proofs.
type ArtifactStore interface {
	Delete(ctx context.Context, name string) error
}

type PaymentService struct {
	db        *gorm.DB
	catalog   Catalog
	artifacts ArtifactStore
	notifier  Notifier
	appName   string
	logger    zerolog.Logger
	now       func() time.Time
}

func NewPaymentService(db *gorm.DB, cat Catalog, artifacts ArtifactStore, notifier Notifier, appName string, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		db:        db,
		catalog:   cat,
		artifacts: artifacts,
		notifier:  notifier,
		appName:   appName,
		logger:    logger.With().Str("component", "workshop_payments").Logger(),
		now:       time.Now,
	}
}

/* ===================== Listings ===================== */

// PendingPayments lists every PENDING payment with payer and workshop name.
func (s *PaymentService) PendingPayments(ctx context.Context) ([]dto.PendingPaymentRow, error) {
	names, err := s.catalog.Load()
	if err != nil {
		return nil, helpers.Internalf(err, "load workshop metadata")
	}
	rows, err := repository.ListPendingPayments(ctx, s.db)
	if err != nil {
		return nil, helpers.Internalf(err, "list pending payments")
	}
	for i := range rows {
		rows[i].WorkshopName = names.Name(rows[i].WorkshopID)
	}
	return rows, nil
}

// UnpaidUsers lists users with no SUCCESS or PENDING payment for workshopID.
func (s *PaymentService) UnpaidUsers(ctx context.Context, workshopID int) ([]dto.UnpaidUserRow, error) {
	rows, err := repository.ListUnpaidUsers(ctx, s.db, workshopID)
	if err != nil {
		return nil, helpers.Internalf(err, "list unpaid users of workshop %d", workshopID)
	}
	return rows, nil
}

func (s *PaymentService) Registrations(ctx context.Context, workshopID int) ([]dto.RegistrationRow, error) {
	rows, err := repository.ListRegistrations(ctx, s.db, workshopID)
	if err != nil {
		return nil, helpers.Internalf(err, "list registrations of workshop %d", workshopID)
	}
	return rows, nil
}

// Payments lists every payment attempt for workshopID with its verifier.
func (s *PaymentService) Payments(ctx context.Context, workshopID int) ([]dto.PaymentListRow, error) {
	names, err := s.catalog.Load()
	if err != nil {
		return nil, helpers.Internalf(err, "load workshop metadata")
	}
	rows, err := repository.ListWorkshopPayments(ctx, s.db, workshopID)
	if err != nil {
		return nil, helpers.Internalf(err, "list payments of workshop %d", workshopID)
	}
	for i := range rows {
		rows[i].WorkshopName = names.Name(rows[i].WorkshopID)
	}
	return rows, nil
}

/* ===================== Transitions ===================== */

// CashPayment records an in-person payment as SUCCESS and enrolls the user.
func (s *PaymentService) CashPayment(ctx context.Context, actor, userID uuid.UUID, workshopID int) (*model.WorkshopPaymentModel, error) {
	names, err := s.catalog.Load()
	if err != nil {
		return nil, helpers.Internalf(err, "load workshop metadata")
	}
	if !names.Has(workshopID) {
		return nil, helpers.BadRequest("Invalid Workshop ID")
	}

	user, err := userRepo.FindUserByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.NotFound("User not Found")
		}
		return nil, helpers.Internalf(err, "find user %s", userID)
	}

	txID := fmt.Sprintf("%s - %d", model.CashMarker, s.now().UnixNano())
	payment := &model.WorkshopPaymentModel{
		UserID:        user.ID,
		WorkshopID:    workshopID,
		PaymentMobile: model.CashMarker,
		Screenshot:    txID,
		TransactionID: txID,
		Status:        model.PaymentStatusSuccess,
		VerifiedBy:    &actor,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.CreatePayment(ctx, tx, payment); err != nil {
			return err
		}
		_, err := repository.CreateEnrollment(ctx, tx, user.ID, workshopID)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helpers.Conflict("Duplicate transaction, try again")
		}
		return nil, helpers.Internalf(err, "record cash payment")
	}

	metrics.CashPayments.Inc()
	s.logger.Info().
		Str("transaction_id", txID).
		Str("user_id", user.ID.String()).
		Str("admin_id", actor.String()).
		Int("workshop_id", workshopID).
		Msg("cash payment recorded")

	s.notifier.Notify(ctx, mailer.WorkshopCashPayment(s.appName, user.Email, names.Name(workshopID)))
	return payment, nil
}

// VerifySuccess moves a PENDING payment to SUCCESS and enrolls its user.
// The uploaded proof is deleted afterwards.
func (s *PaymentService) VerifySuccess(ctx context.Context, actor uuid.UUID, transactionID string) (*model.WorkshopPaymentModel, error) {
	var payment *model.WorkshopPaymentModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repository.ResolvePending(ctx, tx, transactionID, model.PaymentStatusSuccess, actor)
		if err != nil {
			return err
		}
		if _, err := repository.CreateEnrollment(ctx, tx, p.UserID, p.WorkshopID); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, s.resolveError(err, transactionID)
	}

	metrics.PaymentResolutions.WithLabelValues("success").Inc()
	s.logResolved(payment, actor)

	if err := s.artifacts.Delete(ctx, payment.Screenshot); err != nil {
		metrics.ArtifactDeleteFailures.Inc()
		s.logger.Warn().Err(err).
			Str("transaction_id", transactionID).
			Str("screenshot", payment.Screenshot).
			Msg("delete payment proof failed")
	}

	s.notifyPayer(ctx, payment, mailer.WorkshopPaymentSucceeded)
	return payment, nil
}

// VerifyFailure moves a PENDING payment to FAILURE. The proof is kept.
func (s *PaymentService) VerifyFailure(ctx context.Context, actor uuid.UUID, transactionID string) (*model.WorkshopPaymentModel, error) {
	var payment *model.WorkshopPaymentModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repository.ResolvePending(ctx, tx, transactionID, model.PaymentStatusFailure, actor)
		if err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, s.resolveError(err, transactionID)
	}

	metrics.PaymentResolutions.WithLabelValues("failure").Inc()
	s.logResolved(payment, actor)

	s.notifyPayer(ctx, payment, mailer.WorkshopPaymentFailed)
	return payment, nil
}

func (s *PaymentService) resolveError(err error, transactionID string) error {
	if errors.Is(err, repository.ErrNotPending) {
		metrics.PaymentResolutions.WithLabelValues("not_found").Inc()
		return helpers.NotFound("Invalid Transaction ID")
	}
	return helpers.Internalf(err, "resolve payment %s", transactionID)
}

func (s *PaymentService) logResolved(p *model.WorkshopPaymentModel, actor uuid.UUID) {
	s.logger.Info().
		Str("transaction_id", p.TransactionID).
		Str("status", string(p.Status)).
		Str("admin_id", actor.String()).
		Int("workshop_id", p.WorkshopID).
		Msg("payment resolved")
}

// notifyPayer emails the payer of p. The transition is already committed, so
// lookup failures are logged and the email is skipped.
func (s *PaymentService) notifyPayer(ctx context.Context, p *model.WorkshopPaymentModel, build func(appName, to, workshopName string) mailer.Message) {
	user, err := userRepo.FindUserByID(ctx, s.db, p.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", p.UserID.String()).Msg("payer lookup failed, email skipped")
		return
	}

	workshopName := fmt.Sprintf("#%d", p.WorkshopID)
	if names, err := s.catalog.Load(); err != nil {
		s.logger.Warn().Err(err).Msg("workshop metadata unavailable for email")
	} else if n := names.Name(p.WorkshopID); n != "" {
		workshopName = n
	}

	s.notifier.Notify(ctx, build(s.appName, user.Email, workshopName))
}
