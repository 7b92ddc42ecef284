package services

import (
	"context"
	"time"
)

// AuthSvcFacade authenticates the installation owner.
type AuthSvcFacade interface {
	// Login checks the credentials and returns a signed access token and its expiry.
	// Wrong credentials yield apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
