package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// TransactionReader defines read operations for revenue and expense transactions
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions ordered by date.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByCycle retrieves the transactions booked against one cycle.
	ListTransactionsByCycle(ctx context.Context, cropCycleID string) ([]domain.Transaction, error)

	// ListTransactionsBySupplier retrieves the transactions booked on a supplier's credit.
	ListTransactionsBySupplier(ctx context.Context, supplierID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
