package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDepositHistory_ComputesBalanceAfter(t *testing.T) {
	account := NewAccountID()
	txID := NewTransactionID()

	h, err := NewDepositHistory(account, txID, mustMoney(t, "400.00"), mustMoney(t, "100.00"), "salary")

	assert.NoError(t, err)
	assert.Equal(t, account, h.AccountID)
	assert.Equal(t, txID, h.TransactionID)
	assert.True(t, h.BalanceBefore.Equal(mustMoney(t, "400.00")))
	assert.True(t, h.BalanceAfter.Equal(mustMoney(t, "500.00")))
	assert.Equal(t, TypeDeposit, h.TransactionType)
	assert.Equal(t, StatusSuccess, h.Status)
	assert.False(t, h.RecordDate.IsZero())
}

func TestNewWithdrawalHistory_ComputesBalanceAfter(t *testing.T) {
	h, err := NewWithdrawalHistory(NewAccountID(), NewTransactionID(), mustMoney(t, "500.00"), mustMoney(t, "30.00"), "")

	assert.NoError(t, err)
	assert.True(t, h.BalanceAfter.Equal(mustMoney(t, "470.00")))
}

func TestNewTransferHistory_ComputesBalanceAfter(t *testing.T) {
	h, err := NewTransferHistory(NewAccountID(), NewTransactionID(), mustMoney(t, "75.50"), mustMoney(t, "25.50"), "rent")

	assert.NoError(t, err)
	assert.True(t, h.BalanceAfter.Equal(mustMoney(t, "50.00")))
}

func TestNewWithdrawalHistory_AmountExceedingBalanceFails(t *testing.T) {
	_, err := NewWithdrawalHistory(NewAccountID(), NewTransactionID(), mustMoney(t, "20.00"), mustMoney(t, "30.00"), "")
	assert.ErrorIs(t, err, ErrNegativeResult)
}

func TestHistoryValidate_BalanceMismatchRejected(t *testing.T) {
	h, err := NewDepositHistory(NewAccountID(), NewTransactionID(), mustMoney(t, "400.00"), mustMoney(t, "100.00"), "")
	assert.NoError(t, err)

	// Tampering with the stored balance must trip the consistency guard.
	h.BalanceAfter = mustMoney(t, "501.00")
	assert.ErrorIs(t, h.validate(), ErrBalanceMismatch)
}

func TestHistoryValidate_MissingIdentifiersRejected(t *testing.T) {
	h := &TransactionHistory{
		TransactionType: TypeDeposit,
		BalanceBefore:   mustMoney(t, "0.00"),
		BalanceAfter:    mustMoney(t, "0.00"),
	}
	assert.ErrorIs(t, h.validate(), ErrDomainValidation)
}
