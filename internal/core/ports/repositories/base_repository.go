package repositories

import "context"

// TxRunner runs fn inside a single unit of work. Stores that have no transactions run fn directly.
// A write that touches several tables (a transaction and the derived production start date of
// its cycles, a farmer and the cycles it managed) goes through WithinTx so both land or neither.
// Reads that must agree with each other across tables go through WithinReadTx, which never writes.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}
