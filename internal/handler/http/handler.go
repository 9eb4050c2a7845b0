// Package http implements the HTTP transport layer of both bitrogue
// services. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, and tracing concerns
// are handled at this layer before requests reach the service layer.
package http

import (
	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
