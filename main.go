package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/capbank/transaction-server/api"
	"github.com/capbank/transaction-server/internal/config"
	kafkaevents "github.com/capbank/transaction-server/internal/events/kafka"
	"github.com/capbank/transaction-server/internal/logging"
	"github.com/capbank/transaction-server/internal/remote/bankaccount"
	"github.com/capbank/transaction-server/internal/remote/notification"
	"github.com/capbank/transaction-server/internal/service"
	"github.com/capbank/transaction-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("transaction-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	balances := bankaccount.NewClient(envConfig.BankAccountServiceURL, envConfig.RemoteCallTimeout, logger)
	notifier := notification.NewClient(envConfig.NotificationServiceURL, envConfig.RemoteCallTimeout, logger)

	// Event publishing is optional; without brokers the pipeline simply
	// skips the publish stage.
	var publisher service.EventPublisher
	if len(envConfig.KafkaBrokers) > 0 {
		kafkaPublisher := kafkaevents.NewPublisher(envConfig.KafkaBrokers, envConfig.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	svc := service.NewService(dbStorage, balances, notifier, publisher, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Storage: dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
