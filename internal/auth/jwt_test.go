package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := m.IssueToken(userID)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	token, err := m.IssueToken(uuid.New())
	require.NoError(t, err)

	// Flip a bit in the leading character of each segment: header, payload
	// and signature corruption must all be rejected.
	positions := []int{0}
	for i, ch := range token {
		if ch == '.' {
			positions = append(positions, i+1)
		}
	}
	for _, pos := range positions {
		mutated := []byte(token)
		mutated[pos] ^= 0x02
		_, err := m.ValidateToken(string(mutated))
		assert.ErrorIs(t, err, ErrInvalidToken, "bit flip at %d accepted", pos)
	}
}

func TestWrongSecretIsInvalid(t *testing.T) {
	issuer := NewManager("secret-a", 30*time.Minute)
	verifier := NewManager("secret-b", 30*time.Minute)

	token, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecretFailsSafely(t *testing.T) {
	m := NewManager("", 30*time.Minute)

	_, err := m.IssueToken(uuid.New())
	assert.Error(t, err)

	withSecret := NewManager("test-secret", 30*time.Minute)
	token, err := withSecret.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenIsInvalid(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.ValidateToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
