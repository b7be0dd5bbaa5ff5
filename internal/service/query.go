package service

import (
	"fmt"
	"time"

	"github.com/capbank/transaction-server/internal/domain"
	historytable "github.com/capbank/transaction-server/internal/storage/history"
	transactiontable "github.com/capbank/transaction-server/internal/storage/transaction"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AccountQuery carries the paging, sorting and filter window for
// account-scoped listings. A zero Size falls back to the default page size.
type AccountQuery struct {
	AccountID domain.AccountID
	Type      *domain.TransactionType
	Status    *domain.TransactionStatus
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Size      int
	SortBy    string
	SortDesc  bool
}

func (q *AccountQuery) normalize() error {
	if q.AccountID.IsZero() {
		return fmt.Errorf("%w: account id is required", domain.ErrDomainValidation)
	}
	if q.Size == 0 {
		q.Size = defaultPageSize
	}
	if q.Page < 0 {
		return fmt.Errorf("%w: page number %d is negative", domain.ErrInvalidPageSize, q.Page)
	}
	if q.Size < 1 || q.Size > maxPageSize {
		return fmt.Errorf("%w: page size %d is outside 1..%d", domain.ErrInvalidPageSize, q.Size, maxPageSize)
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return fmt.Errorf("%w: start date is after end date", domain.ErrInvalidRange)
	}
	return nil
}

func (q *AccountQuery) toTransactionFilter() *transactiontable.Filter {
	filter := &transactiontable.Filter{
		AccountID: q.AccountID.UUID(),
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		SortBy:    q.SortBy,
		SortDesc:  q.SortDesc,
		Limit:     q.Size,
		Offset:    q.Page * q.Size,
	}
	if q.Type != nil {
		value := string(*q.Type)
		filter.Type = &value
	}
	if q.Status != nil {
		value := string(*q.Status)
		filter.Status = &value
	}
	return filter
}

func (q *AccountQuery) toHistoryFilter() *historytable.Filter {
	filter := &historytable.Filter{
		AccountID: q.AccountID.UUID(),
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		SortBy:    q.SortBy,
		SortDesc:  q.SortDesc,
		Limit:     q.Size,
		Offset:    q.Page * q.Size,
	}
	if q.Type != nil {
		value := string(*q.Type)
		filter.Type = &value
	}
	if q.Status != nil {
		value := string(*q.Status)
		filter.Status = &value
	}
	return filter
}
