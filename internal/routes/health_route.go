package routes

import (
	"net/http"

	"kiro/commons/routes"
	"kiro/internal/dto"
	"kiro/internal/handler"

	"github.com/gin-gonic/gin"
)

func InitHealthRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	deps routes.RouteDependencies,
) {
	routes.RegisterRoute(
		router,
		deps,
		routes.RouteOptions[dto.HealthCheckRequest, dto.HealthCheckResponse]{
			Path:        "/health",
			Method:      http.MethodGet,
			ServiceFunc: healthHandler.HealthService,
		},
	)
}
