package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carries the admin id and role. Tokens are issued without an expiry.
type Claims struct {
	AdminID string `json:"id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

func (s *Service) Issue(adminID uuid.UUID, role string) (string, error) {
	if adminID == uuid.Nil || role == "" {
		return "", ErrInvalidToken
	}
	claims := &Claims{
		AdminID: adminID.String(),
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and returns the claims with a parsed admin id.
func (s *Service) Verify(raw string) (*Claims, uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, uuid.Nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, uuid.Nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.AdminID)
	if err != nil || id == uuid.Nil {
		return nil, uuid.Nil, ErrInvalidToken
	}
	return claims, id, nil
}

// FromHeader extracts the token of an "Authorization: Bearer <token>" header.
func FromHeader(authHeader string) (string, error) {
	fields := strings.Fields(authHeader)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return "", ErrMissingToken
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", ErrMissingToken
	}
	return tok, nil
}
