package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// FarmerSvcFacade defines the farmer operations.
type FarmerSvcFacade interface {
	GetFarmerByID(ctx context.Context, farmerID string) (*domain.Farmer, error)
	ListFarmers(ctx context.Context) ([]domain.Farmer, error)
	CreateFarmer(ctx context.Context, req dto.FarmerRequest) (*domain.Farmer, error)
	UpdateFarmer(ctx context.Context, farmerID string, req dto.FarmerRequest) (*domain.Farmer, error)
	// DeleteFarmer detaches the farmer from every cycle it managed, then deletes it.
	DeleteFarmer(ctx context.Context, farmerID string) error
}

// WithdrawalSvcFacade defines the farmer withdrawal operations.
type WithdrawalSvcFacade interface {
	GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.FarmerWithdrawal, error)
	ListWithdrawals(ctx context.Context) ([]domain.FarmerWithdrawal, error)
	CreateWithdrawal(ctx context.Context, req dto.WithdrawalRequest) (*domain.FarmerWithdrawal, error)
	UpdateWithdrawal(ctx context.Context, withdrawalID string, req dto.WithdrawalRequest) (*domain.FarmerWithdrawal, error)
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
}
