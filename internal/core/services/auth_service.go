package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/platform/config"
	"github.com/SscSPs/greenhouse_ledger/internal/utils"
)

// authService authenticates the single owner configured through ADMIN_USERNAME and
// ADMIN_PASSWORD_HASH and issues access tokens for them.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogInfo(ctx, "Login attempted while no owner password is configured")
		return "", time.Time{}, apperrors.NewAppError(http.StatusUnauthorized, "login is disabled", apperrors.ErrUnauthorized)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogInfo(ctx, "Rejected login", slog.String("username", username))
		return "", time.Time{}, apperrors.NewAppError(http.StatusUnauthorized, "invalid username or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	s.LogInfo(ctx, "Owner logged in", slog.String("username", username))
	return token, expiresAt, nil
}
