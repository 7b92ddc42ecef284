package pgsql

import (
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Tx:                  &BaseRepository{Pool: dbPool},
		GreenhouseRepo:      newPgxGreenhouseRepository(dbPool),
		CropCycleRepo:       newPgxCropCycleRepository(dbPool),
		TransactionRepo:     newPgxTransactionRepository(dbPool),
		FarmerRepo:          newPgxFarmerRepository(dbPool),
		WithdrawalRepo:      newPgxWithdrawalRepository(dbPool),
		SupplierRepo:        newPgxSupplierRepository(dbPool),
		SupplierPaymentRepo: newPgxSupplierPaymentRepository(dbPool),
		PersonRepo:          newPgxPersonRepository(dbPool),
		AdvanceRepo:         newPgxAdvanceRepository(dbPool),
		ProgramRepo:         newPgxProgramRepository(dbPool),
		SettingsRepo:        newPgxSettingsRepository(dbPool),
	}
}
