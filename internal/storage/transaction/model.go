package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Row represents a stored transaction record.
type Row struct {
	ID              uuid.UUID       `db:"id"`
	SourceAccountID *uuid.UUID      `db:"source_account_id"`
	TargetAccountID *uuid.UUID      `db:"target_account_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	Status          string          `db:"status"`
}

// Filter specifies predicates for listing transactions. Only populated
// fields are composed into the query; AccountID matches either side of
// the transaction.
type Filter struct {
	AccountID uuid.UUID
	Type      *string
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortDesc  bool
	Limit     int
	Offset    int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, row *Row) error
	FindByID(ctx context.Context, id uuid.UUID) (*Row, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, filter *Filter) ([]*Row, error)
	Count(ctx context.Context, filter *Filter) (int64, error)
}
