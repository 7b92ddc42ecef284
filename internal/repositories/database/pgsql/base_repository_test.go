package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		contains string
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: pgUniqueViolation},
			wantIs:   apperrors.ErrDuplicate,
			contains: "farmer with ID f-1 already exists",
		},
		{
			name:     "foreign key violation",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgForeignKeyViolation}),
			wantIs:   apperrors.ErrConflict,
			contains: "farmer f-1",
		},
		{
			name:     "other error",
			err:      context.DeadlineExceeded,
			wantIs:   context.DeadlineExceeded,
			contains: "failed to save farmer f-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapWriteError(tt.err, "save", "farmer", "f-1")
			assert.True(t, errors.Is(got, tt.wantIs), "got %v", got)
			assert.Contains(t, got.Error(), tt.contains)
		})
	}
}

func TestMapWriteError_ConflictMessage(t *testing.T) {
	got := mapWriteError(&pgconn.PgError{Code: pgForeignKeyViolation}, "delete", "greenhouse", "g-9")
	assert.Equal(t, "greenhouse g-9 references or is referenced by a missing record", apperrors.Message(got))
}
