package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the write timestamp. It defaults to time.Now.
	Now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// logLookupError logs repository failures but stays quiet on plain not-found results.
func (s *BaseService) logLookupError(ctx context.Context, err error, msg string, keyvals ...any) {
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, msg, keyvals...)
	}
}

// requireReference turns a not-found lookup of a referenced record into a validation error.
func requireReference(err error, what, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("%s %s does not exist", what, id))
	}
	return fmt.Errorf("failed to look up %s %s: %w", what, id, err)
}

// emptyIfNil keeps list endpoints from returning JSON null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// optionalID normalizes an optional reference so that an empty string means unset.
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	v := *id
	return &v
}
