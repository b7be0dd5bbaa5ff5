package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/internal/handlers/v1/history"
	"github.com/capbank/transaction-server/internal/handlers/v1/status"
	"github.com/capbank/transaction-server/internal/handlers/v1/transaction"
	"github.com/capbank/transaction-server/internal/logging"
	"github.com/capbank/transaction-server/internal/service"
	"github.com/capbank/transaction-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("CapBank Transaction Server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	handlers := []interface{ Register(huma.API) }{
		transaction.NewCreateTransactionHandler(r.Service.Transactions),
		transaction.NewCreateDepositHandler(r.Service.Transactions),
		transaction.NewCreateWithdrawalHandler(r.Service.Transactions),
		transaction.NewCreateTransferHandler(r.Service.Transactions),
		transaction.NewGetTransactionHandler(r.Service.Transactions),
		transaction.NewListAccountTransactionsHandler(r.Service.Transactions),
		transaction.NewUpdateStatusHandler(r.Service.Transactions),
		history.NewCreateHistoryHandler(r.Service.History),
		history.NewGetHistoryHandler(r.Service.History),
		history.NewListAccountHistoryHandler(r.Service.History),
		history.NewLatestHistoryHandler(r.Service.History),
		history.NewCountHistoryHandler(r.Service.History),
	}
	for _, h := range handlers {
		h.Register(humaAPI)
	}

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
