package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/core/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/platform/config"
	"github.com/SscSPs/greenhouse_ledger/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "greenhouse-ledger-test",
		AdminUsername:     "owner",
	}
}

// ledgerFixture runs services against the in-memory store.
type ledgerFixture struct {
	suite.Suite
	ctx          context.Context
	svc          *portssvc.ServiceContainer
	repos        portsrepo.RepositoryProvider
	greenhouseID string
}

func (s *ledgerFixture) SetupTest() {
	s.ctx = context.Background()
	s.repos = memory.NewRepositoryProvider(memory.NewStore(""))
	s.svc = services.NewServiceContainer(testConfig(), s.repos)

	g, err := s.svc.Greenhouse.CreateGreenhouse(s.ctx, dto.GreenhouseRequest{
		Name:         "North",
		CreationDate: "2024-01-01",
		InitialCost:  dec("1000"),
	})
	s.Require().NoError(err)
	s.greenhouseID = g.GreenhouseID
}

func (s *ledgerFixture) createCycle(name string, farmerID *string, share *decimal.Decimal) *domain.CropCycle {
	c, err := s.svc.CropCycle.CreateCropCycle(s.ctx, dto.CropCycleRequest{
		Name:                  name,
		StartDate:             "2024-02-01",
		GreenhouseID:          s.greenhouseID,
		SeedType:              "Tomato",
		PlantCount:            500,
		FarmerID:              farmerID,
		FarmerSharePercentage: share,
	})
	s.Require().NoError(err)
	return c
}

func (s *ledgerFixture) share(pct string) *decimal.Decimal {
	return decPtr(pct)
}

func (s *ledgerFixture) createFarmer(name string) *domain.Farmer {
	f, err := s.svc.Farmer.CreateFarmer(s.ctx, dto.FarmerRequest{Name: name})
	s.Require().NoError(err)
	return f
}

func (s *ledgerFixture) createSupplier(name string) *domain.Supplier {
	sup, err := s.svc.Supplier.CreateSupplier(s.ctx, dto.SupplierRequest{Name: name})
	s.Require().NoError(err)
	return sup
}

func (s *ledgerFixture) revenue(cycleID, day, amount string) *domain.Transaction {
	t, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date:        day,
		Type:        domain.Revenue,
		Amount:      dec(amount),
		CropCycleID: cycleID,
	})
	s.Require().NoError(err)
	return t
}

func (s *ledgerFixture) expense(cycleID, day, category, amount string, supplierID *string) *domain.Transaction {
	t, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date:        day,
		Type:        domain.Expense,
		Category:    category,
		Amount:      dec(amount),
		CropCycleID: cycleID,
		SupplierID:  supplierID,
	})
	s.Require().NoError(err)
	return t
}

func (s *ledgerFixture) reloadCycle(id string) *domain.CropCycle {
	c, err := s.svc.CropCycle.GetCropCycleByID(s.ctx, id)
	s.Require().NoError(err)
	return c
}
