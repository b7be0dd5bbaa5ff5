package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is published after a transaction and its ledger entry
// have been committed. Consumers must tolerate duplicates; publishing is
// best-effort.
type TransactionCompleted struct {
	TransactionID   string          `json:"transaction_id"`
	SourceAccountID string          `json:"source_account_id,omitempty"`
	TargetAccountID string          `json:"target_account_id,omitempty"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	OccurredAt      time.Time       `json:"occurred_at"`
}
