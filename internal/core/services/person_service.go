package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type personService struct {
	BaseService
	personRepo  portsrepo.PersonRepositoryFacade
	advanceRepo portsrepo.AdvanceReader
}

// NewPersonService creates a new person service.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade, advanceRepo portsrepo.AdvanceReader) portssvc.PersonSvcFacade {
	return &personService{personRepo: personRepo, advanceRepo: advanceRepo}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, req dto.PersonRequest) (*domain.Person, error) {
	name, err := requireName(req.Name, "person")
	if err != nil {
		return nil, err
	}
	p := domain.Person{PersonID: uuid.NewString(), Name: name}
	p.Touch(s.now())

	if err := s.personRepo.SavePerson(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save person")
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	s.LogInfo(ctx, "Person created", slog.String("person_id", p.PersonID))
	return &p, nil
}

func (s *personService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	p, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find person", slog.String("person_id", personID))
		return nil, err
	}
	return p, nil
}

func (s *personService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.personRepo.ListPersons(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons")
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return emptyIfNil(persons), nil
}

func (s *personService) UpdatePerson(ctx context.Context, personID string, req dto.PersonRequest) (*domain.Person, error) {
	name, err := requireName(req.Name, "person")
	if err != nil {
		return nil, err
	}
	p, err := s.GetPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Touch(s.now())

	if err := s.personRepo.UpdatePerson(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update person", slog.String("person_id", personID))
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return p, nil
}

func (s *personService) DeletePerson(ctx context.Context, personID string) error {
	if _, err := s.GetPersonByID(ctx, personID); err != nil {
		return err
	}
	n, err := s.advanceRepo.CountAdvancesByPerson(ctx, personID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count advances of person", slog.String("person_id", personID))
		return fmt.Errorf("failed to check person usage: %w", err)
	}
	if n > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("person still has %d advance(s)", n))
	}

	if err := s.personRepo.DeletePerson(ctx, personID); err != nil {
		s.LogError(ctx, err, "Failed to delete person", slog.String("person_id", personID))
		return fmt.Errorf("failed to delete person: %w", err)
	}
	s.LogInfo(ctx, "Person deleted", slog.String("person_id", personID))
	return nil
}
