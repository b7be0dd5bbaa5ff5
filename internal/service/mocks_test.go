package service

import (
	"context"
	"io"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/events"
	historytable "github.com/capbank/transaction-server/internal/storage/history"
	transactiontable "github.com/capbank/transaction-server/internal/storage/transaction"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func money(t *testing.T, value string) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, row *transactiontable.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*transactiontable.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transactiontable.Row), args.Error(1)
}

func (m *mockTransactionTable) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transactiontable.Filter) ([]*transactiontable.Row, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transactiontable.Row), args.Error(1)
}

func (m *mockTransactionTable) Count(ctx context.Context, filter *transactiontable.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockHistoryTable struct {
	mock.Mock
}

func (m *mockHistoryTable) Insert(ctx context.Context, row *historytable.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *mockHistoryTable) FindByID(ctx context.Context, id uuid.UUID) (*historytable.Row, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*historytable.Row), args.Error(1)
}

func (m *mockHistoryTable) ExistsByTransactionID(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockHistoryTable) FindLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*historytable.Row, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*historytable.Row), args.Error(1)
}

func (m *mockHistoryTable) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHistoryTable) List(ctx context.Context, filter *historytable.Filter) ([]*historytable.Row, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*historytable.Row), args.Error(1)
}

func (m *mockHistoryTable) Count(ctx context.Context, filter *historytable.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockBalanceService struct {
	mock.Mock
}

func (m *mockBalanceService) GetBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *mockBalanceService) ApplyDelta(ctx context.Context, accountID domain.AccountID, amount domain.Money, operation BalanceOperation) error {
	args := m.Called(ctx, accountID, amount, operation)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Send(ctx context.Context, notification TransactionNotification) bool {
	args := m.Called(ctx, notification)
	return args.Bool(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishTransactionCompleted(ctx context.Context, event events.TransactionCompleted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
