package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/saas-backend/pkg/password"
)

func newHasher(t *testing.T) *password.Hasher {
	t.Helper()
	h, err := password.New(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestHash_SaltAleatorio(t *testing.T) {
	h := newHasher(t)

	first, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	second, err := h.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "cada hash debe llevar un salt distinto")
	assert.True(t, h.Verify("s3cret-pass", first))
	assert.True(t, h.Verify("s3cret-pass", second))
}

func TestHash_UsaCostoConfigurado(t *testing.T) {
	h, err := password.New(11)
	require.NoError(t, err)

	hash, err := h.Hash("otra-clave")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 11, cost)
}

func TestHash_PasswordDemasiadoLarga(t *testing.T) {
	h := newHasher(t)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrTooLong)
}

func TestCompare(t *testing.T) {
	h := newHasher(t)
	hash, err := h.Hash("correcta")
	require.NoError(t, err)

	t.Run("coincide", func(t *testing.T) {
		assert.NoError(t, h.Compare("correcta", hash))
	})

	t.Run("no coincide", func(t *testing.T) {
		assert.ErrorIs(t, h.Compare("incorrecta", hash), password.ErrMismatch)
		assert.False(t, h.Verify("incorrecta", hash))
	})

	t.Run("hash mal formado", func(t *testing.T) {
		err := h.Compare("correcta", "no-es-un-hash")
		require.Error(t, err)
		assert.NotErrorIs(t, err, password.ErrMismatch, "un hash corrupto no es un mismatch")
		assert.False(t, h.Verify("correcta", "no-es-un-hash"))
	})

	t.Run("hash vacío", func(t *testing.T) {
		assert.False(t, h.Verify("correcta", ""))
	})
}

func TestNew_Costo(t *testing.T) {
	h, err := password.New(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost())

	_, err = password.New(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	_, err = password.New(1)
	assert.Error(t, err)
}
