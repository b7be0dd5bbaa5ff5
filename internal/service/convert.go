package service

import (
	"github.com/shopspring/decimal"

	"github.com/capbank/transaction-server/internal/domain"
	historytable "github.com/capbank/transaction-server/internal/storage/history"
	transactiontable "github.com/capbank/transaction-server/internal/storage/transaction"
)

// moneyFromStored rehydrates an amount that was validated on write.
func moneyFromStored(value decimal.Decimal) domain.Money {
	m, err := domain.NewMoney(value)
	if err != nil {
		return domain.Money{}
	}
	return m
}

func transactionToRow(t *domain.Transaction) *transactiontable.Row {
	row := &transactiontable.Row{
		ID:              t.ID.UUID(),
		TransactionType: string(t.Type),
		Amount:          t.Amount.Amount(),
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
		Status:          string(t.Status),
	}
	if t.SourceAccountID != nil {
		id := t.SourceAccountID.UUID()
		row.SourceAccountID = &id
	}
	if t.TargetAccountID != nil {
		id := t.TargetAccountID.UUID()
		row.TargetAccountID = &id
	}
	return row
}

func rowToTransaction(row *transactiontable.Row) *domain.Transaction {
	t := &domain.Transaction{
		ID:              domain.TransactionIDFromUUID(row.ID),
		Type:            domain.TransactionType(row.TransactionType),
		Amount:          moneyFromStored(row.Amount),
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		Status:          domain.TransactionStatus(row.Status),
	}
	if row.SourceAccountID != nil {
		id := domain.AccountIDFromUUID(*row.SourceAccountID)
		t.SourceAccountID = &id
	}
	if row.TargetAccountID != nil {
		id := domain.AccountIDFromUUID(*row.TargetAccountID)
		t.TargetAccountID = &id
	}
	return t
}

func historyToRow(h *domain.TransactionHistory) *historytable.Row {
	return &historytable.Row{
		ID:              h.ID,
		AccountID:       h.AccountID.UUID(),
		TransactionID:   h.TransactionID.UUID(),
		BalanceBefore:   h.BalanceBefore.Amount(),
		BalanceAfter:    h.BalanceAfter.Amount(),
		Amount:          h.TransactionAmount.Amount(),
		TransactionType: string(h.TransactionType),
		Status:          string(h.Status),
		Description:     h.Description,
		RecordDate:      h.RecordDate,
	}
}

func rowToHistory(row *historytable.Row) *domain.TransactionHistory {
	return &domain.TransactionHistory{
		ID:                row.ID,
		AccountID:         domain.AccountIDFromUUID(row.AccountID),
		TransactionID:     domain.TransactionIDFromUUID(row.TransactionID),
		BalanceBefore:     moneyFromStored(row.BalanceBefore),
		BalanceAfter:      moneyFromStored(row.BalanceAfter),
		TransactionAmount: moneyFromStored(row.Amount),
		TransactionType:   domain.TransactionType(row.TransactionType),
		Status:            domain.TransactionStatus(row.Status),
		Description:       row.Description,
		RecordDate:        row.RecordDate,
	}
}
