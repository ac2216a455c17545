package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"reach_backend/internals/features/admins/auth/dto"
	"reach_backend/internals/features/admins/auth/model"
	"reach_backend/internals/features/admins/auth/repository"
	"reach_backend/internals/helpers"
	"reach_backend/internals/metrics"
	"reach_backend/internals/services/mailer"
)

// Notifier delivers notification emails best-effort.
type Notifier interface {
	Notify(ctx context.Context, msg mailer.Message) bool
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(adminID uuid.UUID, role string) (string, error)
}

type Options struct {
	AppName    string
	BcryptCost int
}

type AuthService struct {
	db       *gorm.DB
	tokens   TokenIssuer
	notifier Notifier
	opts     Options
	logger   zerolog.Logger
}

func NewAuthService(db *gorm.DB, tokens TokenIssuer, notifier Notifier, opts Options, logger zerolog.Logger) *AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		db:       db,
		tokens:   tokens,
		notifier: notifier,
		opts:     opts,
		logger:   logger.With().Str("component", "admin_auth").Logger(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login returns a signed token for the admin owning email.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := repository.FindAdminByEmail(ctx, s.db, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.Logins.WithLabelValues("not_found").Inc()
			return "", helpers.NotFound("Admin not Found")
		}
		return "", helpers.Internalf(err, "find admin by email")
	}

	if err := CheckPasswordHash(admin.Password, password); err != nil {
		metrics.Logins.WithLabelValues("bad_password").Inc()
		return "", helpers.Unauthorized("Invalid Password. Try Again")
	}

	token, err := s.tokens.Issue(admin.ID, model.RoleAdmin)
	if err != nil {
		return "", helpers.Internalf(err, "sign token")
	}
	metrics.Logins.WithLabelValues("ok").Inc()
	return token, nil
}

// AddAdmin provisions a new admin and emails them. A failed email does not
// undo the provisioning.
func (s *AuthService) AddAdmin(ctx context.Context, in dto.AddAdminRequest) (*model.AdminModel, error) {
	email := normalizeEmail(in.Email)

	taken, err := repository.EmailTaken(ctx, s.db, email)
	if err != nil {
		return nil, helpers.Internalf(err, "check admin email")
	}
	if taken {
		return nil, helpers.Conflict("Admin already exists")
	}

	hash, err := HashPassword(in.Password, s.opts.BcryptCost)
	if err != nil {
		return nil, helpers.Internalf(err, "hash password")
	}

	admin := &model.AdminModel{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
	}
	if err := repository.CreateAdmin(ctx, s.db, admin); err != nil {
		// Lost a race with a concurrent provisioning of the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helpers.Conflict("Admin already exists")
		}
		return nil, helpers.Internalf(err, "create admin")
	}

	s.notifier.Notify(ctx, mailer.AdminAdded(s.opts.AppName, admin.Email))
	s.logger.Info().Str("admin_id", admin.ID.String()).Msg("admin added")
	return admin, nil
}

// ChangePassword replaces the password of adminID after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, oldPassword, newPassword string) error {
	admin, err := repository.FindAdminByID(ctx, s.db, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.NotFound("Admin not Found")
		}
		return helpers.Internalf(err, "find admin %s", adminID)
	}

	if err := CheckPasswordHash(admin.Password, oldPassword); err != nil {
		return helpers.Unauthorized("Wrong Password. Try Again")
	}
	if oldPassword == newPassword {
		return helpers.BadRequest("Old and new password cannot be same")
	}

	hash, err := HashPassword(newPassword, s.opts.BcryptCost)
	if err != nil {
		return helpers.Internalf(err, "hash password")
	}
	if err := repository.UpdateAdminPassword(ctx, s.db, adminID, hash); err != nil {
		return helpers.Internalf(err, "update password of %s", adminID)
	}
	return nil
}
