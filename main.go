package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nordbooks/backoffice-server/api"
	"github.com/nordbooks/backoffice-server/internal/config"
	"github.com/nordbooks/backoffice-server/internal/logging"
	"github.com/nordbooks/backoffice-server/internal/operator"
	"github.com/nordbooks/backoffice-server/internal/service"
	"github.com/nordbooks/backoffice-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("backoffice-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.ImportWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
