package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/config"
	"mskn-backend/internal/models"
)

func testManager(secret string) *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "test"
	return NewJWTManager(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	m := testManager("secret")
	user := &models.User{ID: "u1", Role: models.RoleOwner}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleOwner, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "test", claims.Issuer)
}

func TestTokensHaveDistinctIDs(t *testing.T) {
	m := testManager("secret")
	user := &models.User{ID: "u1", Role: models.RoleTenant}

	a, err := m.GenerateToken(user)
	require.NoError(t, err)
	b, err := m.GenerateToken(user)
	require.NoError(t, err)

	ca, err := m.ValidateToken(a)
	require.NoError(t, err)
	cb, err := m.ValidateToken(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := testManager("one").GenerateToken(&models.User{ID: "u1", Role: models.RoleManager})
	require.NoError(t, err)

	_, err = testManager("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := testManager("secret")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.GenerateToken(&models.User{ID: "u1", Role: models.RoleManager})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateRejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = testManager("secret").ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := testManager("secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, VerifyPassword(hash, "password123"))
	assert.False(t, VerifyPassword(hash, "password124"))
	assert.False(t, VerifyPassword("not-a-hash", "password123"))
	assert.False(t, VerifyPassword("", ""))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}
