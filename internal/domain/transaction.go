package domain

import (
	"fmt"
	"time"
)

// TransactionType classifies a monetary intent.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeTransfer   TransactionType = "TRANSFER"
)

// ParseTransactionType validates a transaction type string.
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(value) {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return TransactionType(value), nil
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", ErrDomainValidation, value)
}

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// ParseTransactionStatus validates a transaction status string.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	switch TransactionStatus(value) {
	case StatusPending, StatusSuccess, StatusFailed:
		return TransactionStatus(value), nil
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", ErrDomainValidation, value)
}

// statusTransitions is the explicit transition table. SUCCESS is terminal:
// no transition out of it is legal, not even SUCCESS -> SUCCESS. No-op
// transitions from the non-terminal states are allowed.
var statusTransitions = map[TransactionStatus]map[TransactionStatus]bool{
	StatusPending: {StatusPending: true, StatusSuccess: true, StatusFailed: true},
	StatusFailed:  {StatusFailed: true},
	StatusSuccess: {},
}

// Transaction is one monetary intent: a deposit, withdrawal, or transfer.
// Records are append-only; the only mutation is UpdateStatus.
type Transaction struct {
	ID              TransactionID
	SourceAccountID *AccountID
	TargetAccountID *AccountID
	Type            TransactionType
	Amount          Money
	Description     string
	TransactionDate time.Time
	Status          TransactionStatus
}

// NewDeposit creates a deposit into the target account.
func NewDeposit(target AccountID, amount Money, description string) (*Transaction, error) {
	t := &Transaction{
		ID:              NewTransactionID(),
		TargetAccountID: &target,
		Type:            TypeDeposit,
		Amount:          amount,
		Description:     description,
		TransactionDate: time.Now().UTC(),
		Status:          StatusSuccess,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewWithdrawal creates a withdrawal from the source account.
func NewWithdrawal(source AccountID, amount Money, description string) (*Transaction, error) {
	t := &Transaction{
		ID:              NewTransactionID(),
		SourceAccountID: &source,
		Type:            TypeWithdrawal,
		Amount:          amount,
		Description:     description,
		TransactionDate: time.Now().UTC(),
		Status:          StatusSuccess,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTransfer creates a transfer between two distinct accounts.
func NewTransfer(source, target AccountID, amount Money, description string) (*Transaction, error) {
	t := &Transaction{
		ID:              NewTransactionID(),
		SourceAccountID: &source,
		TargetAccountID: &target,
		Type:            TypeTransfer,
		Amount:          amount,
		Description:     description,
		TransactionDate: time.Now().UTC(),
		Status:          StatusSuccess,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) validate() error {
	if t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	switch t.Type {
	case TypeDeposit:
		if t.TargetAccountID == nil || t.TargetAccountID.IsZero() {
			return fmt.Errorf("%w: deposit requires a target account", ErrDomainValidation)
		}
		if t.SourceAccountID != nil {
			return fmt.Errorf("%w: deposit must not have a source account", ErrDomainValidation)
		}
	case TypeWithdrawal:
		if t.SourceAccountID == nil || t.SourceAccountID.IsZero() {
			return fmt.Errorf("%w: withdrawal requires a source account", ErrDomainValidation)
		}
		if t.TargetAccountID != nil {
			return fmt.Errorf("%w: withdrawal must not have a target account", ErrDomainValidation)
		}
	case TypeTransfer:
		if t.SourceAccountID == nil || t.SourceAccountID.IsZero() ||
			t.TargetAccountID == nil || t.TargetAccountID.IsZero() {
			return fmt.Errorf("%w: transfer requires both source and target accounts", ErrDomainValidation)
		}
		if *t.SourceAccountID == *t.TargetAccountID {
			return fmt.Errorf("%w: transfer source and target accounts must differ", ErrDomainValidation)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrDomainValidation, t.Type)
	}
	return nil
}

// UpdateStatus applies the transition table. A successful transaction can
// never be retroactively invalidated.
func (t *Transaction) UpdateStatus(newStatus TransactionStatus) error {
	if !statusTransitions[t.Status][newStatus] {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalStatusTransition, t.Status, newStatus)
	}
	t.Status = newStatus
	return nil
}

// PrimaryAccountID is the account whose balance the ledger anchors to:
// the target for deposits, the source for withdrawals and transfers.
func (t *Transaction) PrimaryAccountID() AccountID {
	if t.Type == TypeDeposit {
		return *t.TargetAccountID
	}
	return *t.SourceAccountID
}
