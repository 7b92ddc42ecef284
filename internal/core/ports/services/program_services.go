package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// ProgramSvcFacade defines the fertilization program operations.
type ProgramSvcFacade interface {
	GetProgramByID(ctx context.Context, programID string) (*domain.FertilizationProgram, error)
	ListPrograms(ctx context.Context) ([]domain.FertilizationProgram, error)
	CreateProgram(ctx context.Context, req dto.ProgramRequest) (*domain.FertilizationProgram, error)
	UpdateProgram(ctx context.Context, programID string, req dto.ProgramRequest) (*domain.FertilizationProgram, error)
	DeleteProgram(ctx context.Context, programID string) error
}
