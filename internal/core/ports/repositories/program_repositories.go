package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// ProgramReader defines read operations for fertilization programs
type ProgramReader interface {
	FindProgramByID(ctx context.Context, programID string) (*domain.FertilizationProgram, error)
	ListPrograms(ctx context.Context) ([]domain.FertilizationProgram, error)
}

// ProgramWriter defines write operations for fertilization programs
type ProgramWriter interface {
	SaveProgram(ctx context.Context, program domain.FertilizationProgram) error
	UpdateProgram(ctx context.Context, program domain.FertilizationProgram) error
	DeleteProgram(ctx context.Context, programID string) error
}

// ProgramRepositoryFacade combines all program-related repository interfaces
type ProgramRepositoryFacade interface {
	ProgramReader
	ProgramWriter
}
