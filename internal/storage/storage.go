package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/internal/config"
	"github.com/capbank/transaction-server/internal/storage/history"
	"github.com/capbank/transaction-server/internal/storage/transaction"
)

type Storage struct {
	DB           *sql.DB
	Transactions transaction.ITransactionTable
	History      history.IHistoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.sql.Open")
	}

	return &Storage{
		DB:           db,
		Transactions: transaction.NewTable(db),
		History:      history.NewTable(db),
	}
}
