package services_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type PersonServiceTestSuite struct {
	ledgerFixture
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}

func (s *PersonServiceTestSuite) TestDeleteRefusedWhileAdvancesExist() {
	c := s.createCycle("A", nil, nil)
	p, err := s.svc.Person.CreatePerson(s.ctx, dto.PersonRequest{Name: "Sami"})
	s.Require().NoError(err)

	a, err := s.svc.Advance.CreateAdvance(s.ctx, dto.AdvanceRequest{
		Date: "2024-03-01", Amount: dec("40"), CropCycleID: c.CropCycleID, PersonID: p.PersonID,
	})
	s.Require().NoError(err)

	s.ErrorIs(s.svc.Person.DeletePerson(s.ctx, p.PersonID), apperrors.ErrConflict)

	s.Require().NoError(s.svc.Advance.DeleteAdvance(s.ctx, a.AdvanceID))
	s.NoError(s.svc.Person.DeletePerson(s.ctx, p.PersonID))
}

func (s *PersonServiceTestSuite) TestAdvanceReferencesMustExist() {
	c := s.createCycle("A", nil, nil)
	p, err := s.svc.Person.CreatePerson(s.ctx, dto.PersonRequest{Name: "Sami"})
	s.Require().NoError(err)

	_, err = s.svc.Advance.CreateAdvance(s.ctx, dto.AdvanceRequest{
		Date: "2024-03-01", Amount: dec("40"), CropCycleID: c.CropCycleID, PersonID: "missing",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Advance.CreateAdvance(s.ctx, dto.AdvanceRequest{
		Date: "2024-03-01", Amount: dec("40"), CropCycleID: "missing", PersonID: p.PersonID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PersonServiceTestSuite) TestProgramDatesOrdered() {
	c := s.createCycle("A", nil, nil)

	_, err := s.svc.Program.CreateProgram(s.ctx, dto.ProgramRequest{
		Name: "Feed", StartDate: "2024-03-01", EndDate: "2024-02-01", CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	p, err := s.svc.Program.CreateProgram(s.ctx, dto.ProgramRequest{
		Name: "Feed", StartDate: "2024-03-01", EndDate: "2024-03-01", CropCycleID: c.CropCycleID,
	})
	s.Require().NoError(err)
	s.True(p.StartDate.Equal(p.EndDate))
}
