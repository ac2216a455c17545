package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("secret")
	id := uuid.New()

	raw, err := svc.Issue(id, "ADMIN")
	require.NoError(t, err)

	claims, gotID, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewService("secret").Issue(uuid.New(), "ADMIN")
	require.NoError(t, err)

	_, _, err = NewService("other").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{AdminID: uuid.NewString(), Role: "ADMIN"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = NewService("secret").Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Empty(t *testing.T) {
	_, _, err := NewService("secret").Verify("  ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestIssue_RequiresSubject(t *testing.T) {
	_, err := NewService("secret").Issue(uuid.Nil, "ADMIN")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc", want: "abc"},
		{header: `Bearer "abc"`, want: "abc"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
	}
	for _, tt := range tests {
		got, err := FromHeader(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMissingToken, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}
