package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/events"
	"github.com/capbank/transaction-server/internal/pipeline"
	historytable "github.com/capbank/transaction-server/internal/storage/history"
	transactiontable "github.com/capbank/transaction-server/internal/storage/transaction"
)

// CreateTransactionCommand describes a transaction to process. Source and
// target are optional; the type decides which are required.
type CreateTransactionCommand struct {
	SourceAccountID *domain.AccountID
	TargetAccountID *domain.AccountID
	Type            domain.TransactionType
	Amount          domain.Money
	Description     string
}

// UpdateStatusCommand moves a transaction through the status table. The
// reason is included in the failure notification when the new status is
// FAILED.
type UpdateStatusCommand struct {
	TransactionID domain.TransactionID
	Status        domain.TransactionStatus
	Reason        string
}

// ProcessResult reports what the pipeline achieved. A true NotificationSent
// or BalancePushed means the corresponding best-effort step went through.
type ProcessResult struct {
	Transaction      *domain.Transaction
	History          *domain.TransactionHistory
	Message          string
	BalancePushed    bool
	NotificationSent bool
}

// TransactionService runs the transaction pipeline and serves transaction
// queries.
type TransactionService struct {
	transactions transactiontable.ITransactionTable
	history      historytable.IHistoryTable
	balances     AccountBalanceService
	notifier     NotificationService
	publisher    EventPublisher
	logger       *logrus.Logger
}

func NewTransactionService(
	transactions transactiontable.ITransactionTable,
	history historytable.IHistoryTable,
	balances AccountBalanceService,
	notifier NotificationService,
	publisher EventPublisher,
	logger *logrus.Logger,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		history:      history,
		balances:     balances,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

// Process validates the command and runs the pipeline: persist the
// transaction, resolve the account balance, record the ledger entry, then
// push the balance delta, notify, and publish the event. The first three
// stages are fatal; the rest are best-effort. Validation errors surface
// unchanged, pipeline failures come back wrapped as a processing failure.
func (s *TransactionService) Process(ctx context.Context, cmd CreateTransactionCommand) (*ProcessResult, error) {
	tx, err := buildTransaction(cmd)
	if err != nil {
		return nil, err
	}

	var (
		currentBalance domain.Money
		entry          *domain.TransactionHistory
	)

	steps := []pipeline.Step{
		{
			Name: "PersistTransaction",
			Run: func(ctx context.Context) error {
				return s.transactions.Insert(ctx, transactionToRow(tx))
			},
		},
		{
			Name: "ResolveBalance",
			Run: func(ctx context.Context) error {
				balance, err := s.resolveBalance(ctx, tx.PrimaryAccountID())
				if err != nil {
					return err
				}
				currentBalance = balance
				return nil
			},
		},
		{
			Name: "RecordHistory",
			Run: func(ctx context.Context) error {
				built, err := buildHistoryEntry(tx, currentBalance)
				if err != nil {
					return err
				}
				exists, err := s.history.ExistsByTransactionID(ctx, tx.ID.UUID())
				if err != nil {
					return err
				}
				if exists {
					return fmt.Errorf("%w: transaction %v", domain.ErrDuplicateHistory, tx.ID)
				}
				if err = s.history.Insert(ctx, historyToRow(built)); err != nil {
					return err
				}
				entry = built
				return nil
			},
		},
		{
			Name:       "PushBalance",
			BestEffort: true,
			Run: func(ctx context.Context) error {
				operation := BalanceSubtract
				if tx.Type == domain.TypeDeposit {
					operation = BalanceAdd
				}
				return s.balances.ApplyDelta(ctx, tx.PrimaryAccountID(), tx.Amount, operation)
			},
		},
		{
			Name:       "Notify",
			BestEffort: true,
			Run: func(ctx context.Context) error {
				if !s.notifier.Send(ctx, successNotification(tx)) {
					return errors.New("notification was not delivered")
				}
				return nil
			},
		},
		{
			Name:       "PublishEvent",
			BestEffort: true,
			Run: func(ctx context.Context) error {
				if s.publisher == nil {
					return nil
				}
				return s.publisher.PublishTransactionCompleted(ctx, completedEvent(tx))
			},
		},
	}

	result, err := pipeline.Run(ctx, s.logger, steps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProcessingFailed, err)
	}

	return &ProcessResult{
		Transaction:      tx,
		History:          entry,
		Message:          fmt.Sprintf("Transaction processed successfully. Amount: %v, Type: %s", tx.Amount, tx.Type),
		BalancePushed:    !result.SoftFailed("PushBalance"),
		NotificationSent: !result.SoftFailed("Notify"),
	}, nil
}

// UpdateStatus loads the transaction, applies the transition table, and
// persists the new status. Moving to FAILED also sends a best-effort failure
// notification carrying the reason.
func (s *TransactionService) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*domain.Transaction, error) {
	row, err := s.transactions.FindByID(ctx, cmd.TransactionID.UUID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransactionNotFound, cmd.TransactionID)
		}
		return nil, err
	}

	tx := rowToTransaction(row)
	if err = tx.UpdateStatus(cmd.Status); err != nil {
		return nil, err
	}
	if err = s.transactions.UpdateStatus(ctx, tx.ID.UUID(), string(tx.Status)); err != nil {
		return nil, err
	}

	if tx.Status == domain.StatusFailed {
		if !s.notifier.Send(ctx, failureNotification(tx, cmd.Reason)) {
			s.logger.WithField("transactionId", tx.ID).Warn("TransactionService.UpdateStatus.FailureNotificationDropped")
		}
	}
	return tx, nil
}

func (s *TransactionService) FindByID(ctx context.Context, id domain.TransactionID) (*domain.Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id.UUID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", domain.ErrTransactionNotFound, id)
		}
		return nil, err
	}
	return rowToTransaction(row), nil
}

// FindByAccount lists transactions touching the account on either side,
// newest first unless the query says otherwise.
func (s *TransactionService) FindByAccount(ctx context.Context, query AccountQuery) (*Page[*domain.Transaction], error) {
	if err := query.normalize(); err != nil {
		return nil, err
	}

	filter := query.toTransactionFilter()
	rows, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.transactions.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	content := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		content = append(content, rowToTransaction(row))
	}
	return newPage(content, query.Page, query.Size, total), nil
}

// resolveBalance asks the bank-account service for the current balance and
// falls back to the latest ledger entry when the remote is unavailable.
func (s *TransactionService) resolveBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error) {
	balance, err := s.balances.GetBalance(ctx, accountID)
	if err == nil {
		return balance, nil
	}

	latest, lookupErr := s.history.FindLatestByAccountID(ctx, accountID.UUID())
	if lookupErr != nil {
		return domain.Money{}, err
	}
	s.logger.WithError(err).
		WithField("accountId", accountID).
		Warn("TransactionService.ResolveBalance.LedgerFallback")
	return moneyFromStored(latest.BalanceAfter), nil
}

func buildTransaction(cmd CreateTransactionCommand) (*domain.Transaction, error) {
	switch cmd.Type {
	case domain.TypeDeposit:
		if cmd.TargetAccountID == nil {
			return nil, fmt.Errorf("%w: deposit requires a target account", domain.ErrDomainValidation)
		}
		return domain.NewDeposit(*cmd.TargetAccountID, cmd.Amount, cmd.Description)
	case domain.TypeWithdrawal:
		if cmd.SourceAccountID == nil {
			return nil, fmt.Errorf("%w: withdrawal requires a source account", domain.ErrDomainValidation)
		}
		return domain.NewWithdrawal(*cmd.SourceAccountID, cmd.Amount, cmd.Description)
	case domain.TypeTransfer:
		if cmd.SourceAccountID == nil || cmd.TargetAccountID == nil {
			return nil, fmt.Errorf("%w: transfer requires both source and target accounts", domain.ErrDomainValidation)
		}
		return domain.NewTransfer(*cmd.SourceAccountID, *cmd.TargetAccountID, cmd.Amount, cmd.Description)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrDomainValidation, cmd.Type)
	}
}

// buildHistoryEntry derives balanceBefore from the resolved balance. The
// resolved balance reflects the transaction already, so a deposit subtracts
// to get the before value, clamped to zero when the balance is lower than
// the deposit amount.
func buildHistoryEntry(tx *domain.Transaction, currentBalance domain.Money) (*domain.TransactionHistory, error) {
	account := tx.PrimaryAccountID()
	switch tx.Type {
	case domain.TypeDeposit:
		before, err := currentBalance.Subtract(tx.Amount)
		if err != nil {
			before = domain.Money{}
		}
		return domain.NewDepositHistory(account, tx.ID, before, tx.Amount, tx.Description)
	case domain.TypeWithdrawal:
		return domain.NewWithdrawalHistory(account, tx.ID, currentBalance.Add(tx.Amount), tx.Amount, tx.Description)
	default:
		return domain.NewTransferHistory(account, tx.ID, currentBalance.Add(tx.Amount), tx.Amount, tx.Description)
	}
}

func successNotification(tx *domain.Transaction) TransactionNotification {
	return TransactionNotification{
		AccountID:       tx.PrimaryAccountID(),
		TransactionID:   tx.ID,
		TransactionType: tx.Type,
		Amount:          tx.Amount,
		Title:           "Transaction processed",
		Message:         fmt.Sprintf("Your %s of %v was processed", strings.ToLower(string(tx.Type)), tx.Amount),
	}
}

func failureNotification(tx *domain.Transaction, reason string) TransactionNotification {
	message := fmt.Sprintf("Your %s of %v failed", strings.ToLower(string(tx.Type)), tx.Amount)
	if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	return TransactionNotification{
		AccountID:       tx.PrimaryAccountID(),
		TransactionID:   tx.ID,
		TransactionType: tx.Type,
		Amount:          tx.Amount,
		Title:           "Transaction failed",
		Message:         message,
	}
}

func completedEvent(tx *domain.Transaction) events.TransactionCompleted {
	event := events.TransactionCompleted{
		TransactionID:   tx.ID.String(),
		TransactionType: string(tx.Type),
		Amount:          tx.Amount.Amount(),
		OccurredAt:      time.Now().UTC(),
	}
	if tx.SourceAccountID != nil {
		event.SourceAccountID = tx.SourceAccountID.String()
	}
	if tx.TargetAccountID != nil {
		event.TargetAccountID = tx.TargetAccountID.String()
	}
	return event
}
