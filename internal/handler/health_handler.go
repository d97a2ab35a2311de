package handler

import (
	"context"

	"kiro/commons/error_handler"
	"kiro/commons/handler"
	"kiro/internal/dto"
	"kiro/internal/logger"
)

type HealthHandler struct {
	logger    logger.Logger
	serviceID string
}

func NewHealthHandler(log logger.Logger, serviceID string) *HealthHandler {
	return &HealthHandler{
		logger:    log.With(logger.String("component", "health_handler")),
		serviceID: serviceID,
	}
}

// HealthService is a pure liveness probe: it reports "ok" whenever the
// process is up, independent of any downstream dependency.
func (h *HealthHandler) HealthService(
	ctx context.Context,
	ioutil *handler.RequestIo[dto.HealthCheckRequest],
) (dto.HealthCheckResponse, *error_handler.ErrorCollection) {
	h.logger.Debug("health check requested")

	response := dto.HealthCheckResponse{
		Status:  "ok",
		Service: h.serviceID,
	}

	return response, nil
}
