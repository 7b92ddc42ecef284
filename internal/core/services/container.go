package services

import (
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Greenhouse = NewGreenhouseService(repos.GreenhouseRepo, repos.CropCycleRepo)
	container.CropCycle = NewCropCycleService(repos.CropCycleRepo, repos.GreenhouseRepo, repos.FarmerRepo, repos.WithdrawalRepo)
	container.Transaction = NewTransactionService(repos.Tx, repos.TransactionRepo, repos.CropCycleRepo, repos.SupplierRepo, repos.ProgramRepo, repos.SupplierPaymentRepo)

	container.Farmer = NewFarmerService(repos.Tx, repos.FarmerRepo, repos.CropCycleRepo)
	container.Withdrawal = NewWithdrawalService(repos.WithdrawalRepo, repos.CropCycleRepo)

	container.Supplier = NewSupplierService(repos.SupplierRepo, repos.TransactionRepo, repos.SupplierPaymentRepo)
	container.SupplierPayment = NewSupplierPaymentService(repos.SupplierPaymentRepo, repos.SupplierRepo, repos.CropCycleRepo, repos.TransactionRepo)

	container.Person = NewPersonService(repos.PersonRepo, repos.AdvanceRepo)
	container.Advance = NewAdvanceService(repos.AdvanceRepo, repos.PersonRepo, repos.CropCycleRepo)
	container.Program = NewProgramService(repos.ProgramRepo, repos.CropCycleRepo)

	// The ledger reads settings through the service so that defaults apply before the first save.
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Ledger = NewLedgerService(repos, container.Settings)

	container.Auth = NewAuthService(cfg)

	return container
}
