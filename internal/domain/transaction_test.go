package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeposit_Success(t *testing.T) {
	target := NewAccountID()

	tx, err := NewDeposit(target, mustMoney(t, "100.00"), "salary")

	assert.NoError(t, err)
	assert.Equal(t, TypeDeposit, tx.Type)
	assert.Equal(t, StatusSuccess, tx.Status)
	assert.Nil(t, tx.SourceAccountID)
	assert.Equal(t, target, *tx.TargetAccountID)
	assert.Equal(t, target, tx.PrimaryAccountID())
	assert.False(t, tx.ID.IsZero())
	assert.False(t, tx.TransactionDate.IsZero())
}

func TestNewWithdrawal_Success(t *testing.T) {
	source := NewAccountID()

	tx, err := NewWithdrawal(source, mustMoney(t, "25.00"), "atm")

	assert.NoError(t, err)
	assert.Equal(t, TypeWithdrawal, tx.Type)
	assert.Equal(t, StatusSuccess, tx.Status)
	assert.Nil(t, tx.TargetAccountID)
	assert.Equal(t, source, tx.PrimaryAccountID())
}

func TestNewTransfer_Success(t *testing.T) {
	source := NewAccountID()
	target := NewAccountID()

	tx, err := NewTransfer(source, target, mustMoney(t, "50.00"), "rent")

	assert.NoError(t, err)
	assert.Equal(t, TypeTransfer, tx.Type)
	assert.Equal(t, source, *tx.SourceAccountID)
	assert.Equal(t, target, *tx.TargetAccountID)
	assert.Equal(t, source, tx.PrimaryAccountID(), "transfers anchor to the source account")
}

func TestNewTransfer_SameAccountFails(t *testing.T) {
	account := NewAccountID()

	_, err := NewTransfer(account, account, mustMoney(t, "50.00"), "")

	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestNewDeposit_ZeroAmountFails(t *testing.T) {
	_, err := NewDeposit(NewAccountID(), mustMoney(t, "0.00"), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewDeposit_MissingTargetFails(t *testing.T) {
	_, err := NewDeposit(AccountID{}, mustMoney(t, "10.00"), "")
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestNewWithdrawal_MissingSourceFails(t *testing.T) {
	_, err := NewWithdrawal(AccountID{}, mustMoney(t, "10.00"), "")
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestNewTransfer_MissingAccountsFails(t *testing.T) {
	_, err := NewTransfer(AccountID{}, NewAccountID(), mustMoney(t, "10.00"), "")
	assert.ErrorIs(t, err, ErrDomainValidation)

	_, err = NewTransfer(NewAccountID(), AccountID{}, mustMoney(t, "10.00"), "")
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestUpdateStatus_PendingTransitions(t *testing.T) {
	tx := &Transaction{Status: StatusPending}
	assert.NoError(t, tx.UpdateStatus(StatusSuccess))
	assert.Equal(t, StatusSuccess, tx.Status)

	tx = &Transaction{Status: StatusPending}
	assert.NoError(t, tx.UpdateStatus(StatusFailed))
	assert.Equal(t, StatusFailed, tx.Status)
}

func TestUpdateStatus_NoOpTransitionsAreIdempotent(t *testing.T) {
	tx := &Transaction{Status: StatusPending}
	assert.NoError(t, tx.UpdateStatus(StatusPending))
	assert.NoError(t, tx.UpdateStatus(StatusPending))
	assert.Equal(t, StatusPending, tx.Status)

	tx = &Transaction{Status: StatusFailed}
	assert.NoError(t, tx.UpdateStatus(StatusFailed))
	assert.Equal(t, StatusFailed, tx.Status)
}

func TestUpdateStatus_SuccessIsTerminal(t *testing.T) {
	for _, next := range []TransactionStatus{StatusPending, StatusFailed, StatusSuccess} {
		tx := &Transaction{Status: StatusSuccess}
		err := tx.UpdateStatus(next)
		assert.ErrorIs(t, err, ErrIllegalStatusTransition, "SUCCESS -> %s must fail", next)
		assert.Equal(t, StatusSuccess, tx.Status)
	}
}

func TestUpdateStatus_FailedCannotRecover(t *testing.T) {
	tx := &Transaction{Status: StatusFailed}
	assert.ErrorIs(t, tx.UpdateStatus(StatusSuccess), ErrIllegalStatusTransition)
	assert.ErrorIs(t, tx.UpdateStatus(StatusPending), ErrIllegalStatusTransition)
}

func TestParseTransactionType(t *testing.T) {
	typ, err := ParseTransactionType("DEPOSIT")
	assert.NoError(t, err)
	assert.Equal(t, TypeDeposit, typ)

	_, err = ParseTransactionType("deposit")
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestParseTransactionStatus(t *testing.T) {
	status, err := ParseTransactionStatus("FAILED")
	assert.NoError(t, err)
	assert.Equal(t, StatusFailed, status)

	_, err = ParseTransactionStatus("CANCELLED")
	assert.ErrorIs(t, err, ErrDomainValidation)
}

func TestParseAccountID(t *testing.T) {
	id := NewAccountID()

	parsed, err := ParseAccountID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseAccountID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestParseTransactionID(t *testing.T) {
	id := NewTransactionID()

	parsed, err := ParseTransactionID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseTransactionID("")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
