package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/libratrack/alertgate/pkg/config"
	handlers "github.com/libratrack/alertgate/pkg/handlers/http"
)

type (
	ApiServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		handlerTransport handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:       NewBaseServer(di.Config, di.Logger),
		handlerTransport: di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("starting api server")
	return s.router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	s.router.Get("/", s.handlerTransport.IndexHandler.Handle)

	api := s.router.Group("/api")
	{
		api.Post("/snort-alert", s.handlerTransport.CreateAlertHandler.Handle)
		api.Post("/detect-injection", s.handlerTransport.DetectInjectionHandler.Handle)
		api.Get("/alerts", s.handlerTransport.ListAlertsHandler.Handle)
		api.Delete("/alerts/:alert_id", s.handlerTransport.DeleteAlertHandler.Handle)
		api.Get("/stats", s.handlerTransport.GetStatsHandler.Handle)
		api.Get("/health", s.handlerTransport.HealthHandler.Handle)
	}
}

func (s *ApiServer) Shutdown() error {
	return s.router.Shutdown()
}
