package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/api"
	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewPostgres(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewPostgres")
		return
	}

	op := operator.NewOperatorDelegator(dbStorage, 4)
	op.Start()
	defer op.Stop()

	svc := service.NewService(dbStorage, op)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: op,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
