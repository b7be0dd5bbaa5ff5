package domain

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// TransactionHistory is one ledger entry tied 1:1 to a transaction, capturing
// the account balance before and after. Entries are append-only; a correction
// requires a new independent entry.
type TransactionHistory struct {
	ID                uuid.UUID
	AccountID         AccountID
	TransactionID     TransactionID
	BalanceBefore     Money
	BalanceAfter      Money
	TransactionAmount Money
	TransactionType   TransactionType
	Status            TransactionStatus
	Description       string
	RecordDate        time.Time
}

// NewDepositHistory records a deposit: balanceAfter = balanceBefore + amount.
func NewDepositHistory(account AccountID, transaction TransactionID, balanceBefore, amount Money, description string) (*TransactionHistory, error) {
	return newHistory(account, transaction, balanceBefore, balanceBefore.Add(amount), amount, TypeDeposit, description)
}

// NewWithdrawalHistory records a withdrawal: balanceAfter = balanceBefore - amount.
func NewWithdrawalHistory(account AccountID, transaction TransactionID, balanceBefore, amount Money, description string) (*TransactionHistory, error) {
	after, err := balanceBefore.Subtract(amount)
	if err != nil {
		return nil, err
	}
	return newHistory(account, transaction, balanceBefore, after, amount, TypeWithdrawal, description)
}

// NewTransferHistory records a transfer from the primary account's
// perspective: balanceAfter = balanceBefore - amount.
func NewTransferHistory(account AccountID, transaction TransactionID, balanceBefore, amount Money, description string) (*TransactionHistory, error) {
	after, err := balanceBefore.Subtract(amount)
	if err != nil {
		return nil, err
	}
	return newHistory(account, transaction, balanceBefore, after, amount, TypeTransfer, description)
}

func newHistory(account AccountID, transaction TransactionID, before, after, amount Money, transactionType TransactionType, description string) (*TransactionHistory, error) {
	h := &TransactionHistory{
		ID:                uuid.Must(uuid.NewV4()),
		AccountID:         account,
		TransactionID:     transaction,
		BalanceBefore:     before,
		BalanceAfter:      after,
		TransactionAmount: amount,
		TransactionType:   transactionType,
		Status:            StatusSuccess,
		Description:       description,
		RecordDate:        time.Now().UTC(),
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// validate is a consistency guard, not a derived-field shortcut: the stored
// balanceAfter must match what the type's arithmetic predicts.
func (h *TransactionHistory) validate() error {
	if h.AccountID.IsZero() {
		return fmt.Errorf("%w: history requires an account id", ErrDomainValidation)
	}
	if h.TransactionID.IsZero() {
		return fmt.Errorf("%w: history requires a transaction id", ErrDomainValidation)
	}

	var expected Money
	switch h.TransactionType {
	case TypeDeposit:
		expected = h.BalanceBefore.Add(h.TransactionAmount)
	case TypeWithdrawal, TypeTransfer:
		after, err := h.BalanceBefore.Subtract(h.TransactionAmount)
		if err != nil {
			return fmt.Errorf("%w: %s of %s exceeds balance %s", ErrBalanceMismatch, h.TransactionType, h.TransactionAmount, h.BalanceBefore)
		}
		expected = after
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ErrDomainValidation, h.TransactionType)
	}

	if !h.BalanceAfter.Equal(expected) {
		return fmt.Errorf("%w: balanceAfter %s, expected %s", ErrBalanceMismatch, h.BalanceAfter, expected)
	}
	return nil
}
