package history

import (
	"time"

	"github.com/capbank/transaction-server/internal/domain"
)

// HistoryEntry is the API response model for a ledger entry.
type HistoryEntry struct {
	ID              string `json:"id" doc:"Ledger entry UUID"`
	AccountID       string `json:"accountId" doc:"Account UUID"`
	TransactionID   string `json:"transactionId" doc:"Transaction UUID, unique per entry"`
	BalanceBefore   string `json:"balanceBefore" doc:"Account balance before the transaction"`
	BalanceAfter    string `json:"balanceAfter" doc:"Account balance after the transaction"`
	Amount          string `json:"amount" doc:"Transaction amount"`
	TransactionType string `json:"transactionType" doc:"DEPOSIT, WITHDRAWAL or TRANSFER"`
	Status          string `json:"status" doc:"Entry status"`
	Description     string `json:"description,omitempty" doc:"Free-form description"`
	RecordDate      string `json:"recordDate" doc:"RFC3339 record date"`
}

// HistoryPage is a page of ledger entries plus paging metadata.
type HistoryPage struct {
	Content       []HistoryEntry `json:"content" doc:"Page of ledger entries"`
	PageNumber    int            `json:"pageNumber" doc:"Zero-based page number"`
	PageSize      int            `json:"pageSize" doc:"Requested page size"`
	TotalElements int64          `json:"totalElements" doc:"Total matching entries"`
	TotalPages    int            `json:"totalPages" doc:"Total pages at this page size"`
	First         bool           `json:"first" doc:"Whether this is the first page"`
	Last          bool           `json:"last" doc:"Whether this is the last page"`
}

func fromDomain(h *domain.TransactionHistory) HistoryEntry {
	return HistoryEntry{
		ID:              h.ID.String(),
		AccountID:       h.AccountID.String(),
		TransactionID:   h.TransactionID.String(),
		BalanceBefore:   h.BalanceBefore.String(),
		BalanceAfter:    h.BalanceAfter.String(),
		Amount:          h.TransactionAmount.String(),
		TransactionType: string(h.TransactionType),
		Status:          string(h.Status),
		Description:     h.Description,
		RecordDate:      h.RecordDate.Format(time.RFC3339),
	}
}
