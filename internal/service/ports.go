package service

import (
	"context"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/events"
)

// BalanceOperation selects the direction of an atomic balance adjustment on
// the bank-account service.
type BalanceOperation string

const (
	BalanceAdd      BalanceOperation = "ADD"
	BalanceSubtract BalanceOperation = "SUBTRACT"
)

// AccountBalanceService is the outbound contract to the bank-account service.
// ApplyDelta adjusts the stored balance in a single remote call so two
// concurrent writers cannot interleave a read-modify-write.
type AccountBalanceService interface {
	GetBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error)
	ApplyDelta(ctx context.Context, accountID domain.AccountID, amount domain.Money, operation BalanceOperation) error
}

// TransactionNotification is the payload delivered to the notification
// service for a processed transaction.
type TransactionNotification struct {
	AccountID       domain.AccountID
	TransactionID   domain.TransactionID
	TransactionType domain.TransactionType
	Amount          domain.Money
	Title           string
	Message         string
}

// NotificationService delivers user notifications. Delivery failures are
// reported as false, never as an error: callers treat delivery as
// best-effort.
type NotificationService interface {
	Send(ctx context.Context, notification TransactionNotification) bool
}

// EventPublisher emits domain events for downstream consumers.
type EventPublisher interface {
	PublishTransactionCompleted(ctx context.Context, event events.TransactionCompleted) error
}
