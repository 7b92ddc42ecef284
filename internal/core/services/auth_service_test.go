package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/services"
	"github.com/SscSPs/greenhouse_ledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-tomato")
	require.NoError(t, err)
	cfg := testConfig()
	cfg.AdminPasswordHash = hash
	auth := services.NewAuthService(cfg)
	ctx := context.Background()

	token, expiresAt, err := auth.Login(ctx, "owner", "s3cret-tomato")
	require.NoError(t, err)
	assert.False(t, expiresAt.IsZero())

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
	assert.Equal(t, cfg.JWTIssuer, claims.Issuer)

	_, _, err = auth.Login(ctx, "owner", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = auth.Login(ctx, "intruder", "s3cret-tomato")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_LoginDisabledWithoutHash(t *testing.T) {
	auth := services.NewAuthService(testConfig())

	_, _, err := auth.Login(context.Background(), "owner", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, "login is disabled", apperrors.Message(err))
}
