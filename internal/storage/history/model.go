package history

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Row represents a stored ledger entry. Entries are append-only: there is no
// update operation on this table.
type Row struct {
	ID              uuid.UUID       `db:"id"`
	AccountID       uuid.UUID       `db:"account_id"`
	TransactionID   uuid.UUID       `db:"transaction_id"`
	BalanceBefore   decimal.Decimal `db:"balance_before"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Status          string          `db:"status"`
	Description     string          `db:"description"`
	RecordDate      time.Time       `db:"record_date"`
}

// Filter specifies predicates for listing ledger entries. Date bounds apply
// to the record date.
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

// IHistoryTable defines the interface for ledger entry storage operations.
type IHistoryTable interface {
	Insert(ctx context.Context, row *Row) error
	FindByID(ctx context.Context, id uuid.UUID) (*Row, error)
	ExistsByTransactionID(ctx context.Context, transactionID uuid.UUID) (bool, error)
	FindLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*Row, error)
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
	List(ctx context.Context, filter *Filter) ([]*Row, error)
	Count(ctx context.Context, filter *Filter) (int64, error)
}
