package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/nordbooks/backoffice-server/internal/handlers/v1/bankimport"
	"github.com/nordbooks/backoffice-server/internal/handlers/v1/status"
	"github.com/nordbooks/backoffice-server/internal/importer"
	"github.com/nordbooks/backoffice-server/internal/logging"
	"github.com/nordbooks/backoffice-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Registry *importer.Registry
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	apiV1 := humago.New(mux, huma.DefaultConfig("Backoffice Server", "1.0.0"))
	apiV1.UseMiddleware(logging.Middleware(r.Logger))

	registry := r.Registry
	if registry == nil {
		registry = importer.DefaultRegistry()
	}

	bankimport.NewCheckDuplicatesHandler(r.Service.Statement).Register(apiV1)
	bankimport.NewImportStatementHandler(r.Service.Statement).Register(apiV1)
	bankimport.NewParseStatementHandler(r.Service.Statement, registry).Register(apiV1)
	bankimport.NewImportHistoryHandler(r.Service.Statement).Register(apiV1)

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
