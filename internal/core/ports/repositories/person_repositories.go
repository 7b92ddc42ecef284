package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// PersonReader defines read operations for the people advances are paid to
type PersonReader interface {
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)
	ListPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriter defines write operations for persons
type PersonWriter interface {
	SavePerson(ctx context.Context, person domain.Person) error
	UpdatePerson(ctx context.Context, person domain.Person) error
	DeletePerson(ctx context.Context, personID string) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}

// AdvanceReader defines read operations for personal advances
type AdvanceReader interface {
	FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error)
	ListAdvances(ctx context.Context) ([]domain.Advance, error)

	// CountAdvancesByPerson counts the advances paid to a person.
	CountAdvancesByPerson(ctx context.Context, personID string) (int, error)
}

// AdvanceWriter defines write operations for personal advances
type AdvanceWriter interface {
	SaveAdvance(ctx context.Context, advance domain.Advance) error
	UpdateAdvance(ctx context.Context, advance domain.Advance) error
	DeleteAdvance(ctx context.Context, advanceID string) error
}

// AdvanceRepositoryFacade combines all advance-related repository interfaces
type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
}
