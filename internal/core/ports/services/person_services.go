package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// PersonSvcFacade defines the operations on people receiving advances.
type PersonSvcFacade interface {
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	ListPersons(ctx context.Context) ([]domain.Person, error)
	CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error)
	UpdatePerson(ctx context.Context, personID string, req dto.PersonRequest) (*domain.Person, error)
	DeletePerson(ctx context.Context, personID string) error
}

// AdvanceSvcFacade defines the personal advance operations.
type AdvanceSvcFacade interface {
	GetAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error)
	ListAdvances(ctx context.Context) ([]domain.Advance, error)
	CreateAdvance(ctx context.Context, req dto.AdvanceRequest) (*domain.Advance, error)
	UpdateAdvance(ctx context.Context, advanceID string, req dto.AdvanceRequest) (*domain.Advance, error)
	DeleteAdvance(ctx context.Context, advanceID string) error
}
