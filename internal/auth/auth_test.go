package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-break-bot/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasscode_Check(t *testing.T) {
	p, err := NewPasscode("12345")
	require.NoError(t, err)

	assert.NoError(t, p.Check("12345"))
	assert.True(t, errors.Is(p.Check("1234"), domain.ErrUnauthorized))
	assert.True(t, errors.Is(p.Check(""), domain.ErrUnauthorized))

	_, err = NewPasscode("")
	assert.Error(t, err)
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	token, expires, err := issuer.GenerateToken()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("secret", time.Minute)

	t.Run("Should reject token signed with another secret", func(t *testing.T) {
		token, _, err := NewIssuer("other", time.Minute).GenerateToken()
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("Should reject expired token", func(t *testing.T) {
		token, _, err := issuer.GenerateToken()
		require.NoError(t, err)

		late := NewIssuer("secret", time.Minute)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = late.ParseToken(token)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("Should reject unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.ParseToken(token)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := issuer.ParseToken("not-a-token")
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}
