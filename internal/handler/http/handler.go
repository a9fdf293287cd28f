package http

import (
	"github.com/universal-workshop/syncagent/internal/connectivity"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/service"
)

// Handler serves the agent's local HTTP API. UI clients on the same device
// talk to it instead of the remote ERP endpoint; the agent decides when the
// captured work actually reaches the network.
type Handler struct {
	services *service.Services
	monitor  *connectivity.Monitor

	logger *logger.Logger
}

func NewHandler(services *service.Services, monitor *connectivity.Monitor, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		monitor:  monitor,
		logger:   logger,
	}
}
