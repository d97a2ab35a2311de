package routes

import (
	"net/http"

	"kiro/commons/routes"
	"kiro/internal/dto"
	"kiro/internal/handler"

	"github.com/gin-gonic/gin"
)

func InitRootRoutes(
	router *gin.Engine,
	rootHandler *handler.RootHandler,
	deps routes.RouteDependencies,
) {
	routes.RegisterRoute(
		router,
		deps,
		routes.RouteOptions[dto.RootInfoRequest, dto.RootInfoResponse]{
			Path:        "/",
			Method:      http.MethodGet,
			ServiceFunc: rootHandler.RootService,
		},
	)
}
