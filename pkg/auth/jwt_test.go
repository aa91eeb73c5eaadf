package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService("test-secret", "bhp-api", 1)
	require.NoError(t, err)
	return s
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", "bhp-api", 1)
	assert.Error(t, err)
}

func TestGenerateAndParseToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.GenerateToken("user-1", "admin@example.com", RoleAdministrator)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdministrator, claims.Role)
	assert.True(t, claims.HasRole(RoleAdministrator))
	assert.False(t, claims.HasRole(RoleCustomer))
	assert.NotEmpty(t, claims.ID)
}

func TestHasRole_MultipleRoles(t *testing.T) {
	s := newTestService(t)

	token, err := s.GenerateToken("user-2", "", RoleCustomer, RoleAdministrator)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.True(t, claims.HasRole(RoleCustomer))
	assert.True(t, claims.HasRole(RoleAdministrator))
}

func TestParseToken_WrongSecret(t *testing.T) {
	other, err := NewJWTService("other-secret", "bhp-api", 1)
	require.NoError(t, err)
	token, err := other.GenerateToken("user-1", "", RoleAdministrator)
	require.NoError(t, err)

	_, err = newTestService(t).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	other, err := NewJWTService("test-secret", "someone-else", 1)
	require.NoError(t, err)
	token, err := other.GenerateToken("user-1", "", RoleAdministrator)
	require.NoError(t, err)

	_, err = newTestService(t).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenIssuer)
}

func TestParseToken_Expired(t *testing.T) {
	s := newTestService(t)
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "bhp-api",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := newTestService(t).ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{UserID: "user-1", Role: RoleAdministrator}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService(t).ParseToken(token)
	assert.Error(t, err)
}
