package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/internal/domain"
	historytable "github.com/capbank/transaction-server/internal/storage/history"
)

// CreateHistoryCommand records a ledger entry for an externally processed
// transaction. BalanceAfter is derived from the type's arithmetic, never
// taken from the caller.
type CreateHistoryCommand struct {
	AccountID     domain.AccountID
	TransactionID domain.TransactionID
	BalanceBefore domain.Money
	Amount        domain.Money
	Type          domain.TransactionType
	Description   string
}

// HistoryService serves the append-only transaction ledger.
type HistoryService struct {
	history historytable.IHistoryTable
	logger  *logrus.Logger
}

func NewHistoryService(history historytable.IHistoryTable, logger *logrus.Logger) *HistoryService {
	return &HistoryService{history: history, logger: logger}
}

// Create appends a ledger entry. At most one entry may exist per
// transaction; a second attempt fails with a duplicate error.
func (s *HistoryService) Create(ctx context.Context, cmd CreateHistoryCommand) (*domain.TransactionHistory, error) {
	entry, err := buildLedgerEntry(cmd)
	if err != nil {
		return nil, err
	}

	exists, err := s.history.ExistsByTransactionID(ctx, cmd.TransactionID.UUID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: transaction %v", domain.ErrDuplicateHistory, cmd.TransactionID)
	}

	if err = s.history.Insert(ctx, historyToRow(entry)); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *HistoryService) FindByID(ctx context.Context, id uuid.UUID) (*domain.TransactionHistory, error) {
	row, err := s.history.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", domain.ErrHistoryNotFound, id)
		}
		return nil, err
	}
	return rowToHistory(row), nil
}

// FindByAccount lists the account's ledger entries, newest first unless the
// query says otherwise.
func (s *HistoryService) FindByAccount(ctx context.Context, query AccountQuery) (*Page[*domain.TransactionHistory], error) {
	if err := query.normalize(); err != nil {
		return nil, err
	}

	filter := query.toHistoryFilter()
	rows, err := s.history.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.history.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	content := make([]*domain.TransactionHistory, 0, len(rows))
	for _, row := range rows {
		content = append(content, rowToHistory(row))
	}
	return newPage(content, query.Page, query.Size, total), nil
}

// FindLatestByAccount returns the account's most recent ledger entry.
func (s *HistoryService) FindLatestByAccount(ctx context.Context, accountID domain.AccountID) (*domain.TransactionHistory, error) {
	row, err := s.history.FindLatestByAccountID(ctx, accountID.UUID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no entries for account %v", domain.ErrHistoryNotFound, accountID)
		}
		return nil, err
	}
	return rowToHistory(row), nil
}

func (s *HistoryService) CountByAccount(ctx context.Context, accountID domain.AccountID) (int64, error) {
	return s.history.CountByAccountID(ctx, accountID.UUID())
}

func buildLedgerEntry(cmd CreateHistoryCommand) (*domain.TransactionHistory, error) {
	switch cmd.Type {
	case domain.TypeDeposit:
		return domain.NewDepositHistory(cmd.AccountID, cmd.TransactionID, cmd.BalanceBefore, cmd.Amount, cmd.Description)
	case domain.TypeWithdrawal:
		return domain.NewWithdrawalHistory(cmd.AccountID, cmd.TransactionID, cmd.BalanceBefore, cmd.Amount, cmd.Description)
	case domain.TypeTransfer:
		return domain.NewTransferHistory(cmd.AccountID, cmd.TransactionID, cmd.BalanceBefore, cmd.Amount, cmd.Description)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrDomainValidation, cmd.Type)
	}
}
