package http_test

import (
	"testing"
	"time"

	httpin "workify/internal/adapters/in/http"
	"workify/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseToken(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleWorker)
	require.NoError(t, err)

	token, err := httpin.SignToken(testSecret, actor, time.Hour)
	require.NoError(t, err)

	parsed, err := httpin.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.True(t, parsed.ID().IsEqual(actor.ID()))
	assert.Equal(t, kernel.RoleWorker, parsed.Role())
}

func TestParseToken_Rejects(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleEmployer)
	require.NoError(t, err)

	expired, err := httpin.SignToken(testSecret, actor, -time.Minute)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  actor.ID().String(),
		"role": "employer",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  actor.ID().String(),
		"role": "admin",
	}).SignedString(testSecret)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "42",
		"role": "employer",
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":       "not.a.token",
		"unsigned":      unsigned,
		"unknown role":  badRole,
		"non-uuid sub":  badSubject,
		"wrong secret":  mustSign(t, []byte("other"), actor),
		"expired token": expired,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := httpin.ParseToken(testSecret, token)
			require.ErrorIs(t, err, httpin.ErrUnauthorized)
		})
	}
}

func mustSign(t *testing.T, secret []byte, actor kernel.Actor) string {
	t.Helper()
	token, err := httpin.SignToken(secret, actor, time.Hour)
	require.NoError(t, err)
	return token
}
