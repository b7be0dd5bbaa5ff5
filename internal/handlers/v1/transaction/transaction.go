package transaction

import (
	"time"

	"github.com/capbank/transaction-server/internal/domain"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	SourceAccountID string `json:"sourceAccountId,omitempty" doc:"Source account UUID, absent for deposits"`
	TargetAccountID string `json:"targetAccountId,omitempty" doc:"Target account UUID, absent for withdrawals"`
	TransactionType string `json:"transactionType" doc:"DEPOSIT, WITHDRAWAL or TRANSFER"`
	Amount          string `json:"amount" doc:"Decimal amount with two fraction digits"`
	Description     string `json:"description,omitempty" doc:"Free-form description"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	Status          string `json:"status" doc:"PENDING, SUCCESS or FAILED"`
}

// TransactionPage is a page of transactions plus paging metadata.
type TransactionPage struct {
	Content       []Transaction `json:"content" doc:"Page of transactions"`
	PageNumber    int           `json:"pageNumber" doc:"Zero-based page number"`
	PageSize      int           `json:"pageSize" doc:"Requested page size"`
	TotalElements int64         `json:"totalElements" doc:"Total matching transactions"`
	TotalPages    int           `json:"totalPages" doc:"Total pages at this page size"`
	First         bool          `json:"first" doc:"Whether this is the first page"`
	Last          bool          `json:"last" doc:"Whether this is the last page"`
}

func fromDomain(tx *domain.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		TransactionType: string(tx.Type),
		Amount:          tx.Amount.String(),
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		Status:          string(tx.Status),
	}
	if tx.SourceAccountID != nil {
		out.SourceAccountID = tx.SourceAccountID.String()
	}
	if tx.TargetAccountID != nil {
		out.TargetAccountID = tx.TargetAccountID.String()
	}
	return out
}
