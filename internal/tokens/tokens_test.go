package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/farm_market/internal/models"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")
	userID := uuid.New()

	raw, err := Sign(userID, "farmer@example.com", models.RoleFarmer, secret)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := Parse(raw, secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "farmer@example.com", claims.Email)
	assert.Equal(t, models.RoleFarmer, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_RejectsBadInput(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")

	_, err := Parse("not-a-jwt", secret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	raw, err := Sign(uuid.New(), "v@example.com", models.RoleVendor, secret)
	require.NoError(t, err)

	_, err = Parse(raw, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
