package handler

import (
	"context"

	"kiro/commons/error_handler"
	"kiro/commons/handler"
	"kiro/internal/dto"
	"kiro/internal/logger"
)

type RootHandler struct {
	logger      logger.Logger
	serviceName string
}

func NewRootHandler(log logger.Logger, serviceName string) *RootHandler {
	return &RootHandler{
		logger:      log.With(logger.String("component", "root_handler")),
		serviceName: serviceName,
	}
}

// RootService answers the identity banner on GET /.
func (h *RootHandler) RootService(
	ctx context.Context,
	ioutil *handler.RequestIo[dto.RootInfoRequest],
) (dto.RootInfoResponse, *error_handler.ErrorCollection) {
	response := dto.RootInfoResponse{
		Message: h.serviceName + " is running",
	}

	return response, nil
}
