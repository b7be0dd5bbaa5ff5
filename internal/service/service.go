package service

import (
	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/internal/storage"
)

// Service bundles the application services behind a single wiring point.
type Service struct {
	Transactions *TransactionService
	History      *HistoryService
}

func NewService(store *storage.Storage, balances AccountBalanceService, notifier NotificationService, publisher EventPublisher, logger *logrus.Logger) *Service {
	return &Service{
		Transactions: NewTransactionService(store.Transactions, store.History, balances, notifier, publisher, logger),
		History:      NewHistoryService(store.History, logger),
	}
}
