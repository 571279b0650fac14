package auth

import (
	"testing"
	"time"

	"eventcomposer/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_Issue(t *testing.T) {
	secret := "test-secret"
	j := NewJWT(secret)

	token, err := j.Issue("user-123", "u@example.com", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
}

func TestJWT_Verify(t *testing.T) {
	j := NewJWT("test-secret")
	valid, err := j.Issue("user-123", "u@example.com", time.Hour)
	require.NoError(t, err)

	other, err := NewJWT("other-secret").Issue("user-123", "", time.Hour)
	require.NoError(t, err)

	expired, err := j.Issue("user-123", "", -time.Minute)
	require.NoError(t, err)

	noSubject, err := j.Issue("", "", time.Hour)
	require.NoError(t, err)

	blankSubject, err := j.Issue("   ", "", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-123"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-123"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    domain.Principal
		wantErr error
	}{
		{name: "valid", token: valid, want: domain.Principal{UserID: "user-123", Email: "u@example.com"}},
		{name: "wrong secret", token: other, wantErr: domain.ErrTokenInvalid},
		{name: "expired", token: expired, wantErr: domain.ErrTokenExpired},
		{name: "missing subject", token: noSubject, wantErr: domain.ErrTokenInvalid},
		{name: "blank subject", token: blankSubject, wantErr: domain.ErrTokenInvalid},
		{name: "unsigned", token: none, wantErr: domain.ErrTokenInvalid},
		{name: "no expiry", token: noExpiry, wantErr: domain.ErrTokenInvalid},
		{name: "garbage", token: "not-a-jwt", wantErr: domain.ErrTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := j.Verify(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.UserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
