package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the Postgres and the in-memory store fill every field.
type RepositoryProvider struct {
	Tx                  TxRunner
	GreenhouseRepo      GreenhouseRepositoryFacade
	CropCycleRepo       CropCycleRepositoryFacade
	TransactionRepo     TransactionRepositoryFacade
	FarmerRepo          FarmerRepositoryFacade
	WithdrawalRepo      WithdrawalRepositoryFacade
	SupplierRepo        SupplierRepositoryFacade
	SupplierPaymentRepo SupplierPaymentRepositoryFacade
	PersonRepo          PersonRepositoryFacade
	AdvanceRepo         AdvanceRepositoryFacade
	ProgramRepo         ProgramRepositoryFacade
	SettingsRepo        SettingsRepository
}
