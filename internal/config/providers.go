package config

import (
	"kiro/commons/routes"
	"kiro/commons/server"
	"kiro/internal/handler"
	"kiro/internal/logger"
	internalRoutes "kiro/internal/routes"

	"github.com/gin-gonic/gin"
)

// ProvideConfig loads and validates the environment configuration. A
// validation error aborts fx startup, so the process exits non-zero on a
// broken config instead of serving with it.
func ProvideConfig() (*Config, error) {
	return Load()
}

func ProvideLogger(cfg *Config) (logger.Logger, error) {
	if cfg.LogEnv == "development" {
		return logger.NewZapLoggerForDev()
	}
	return logger.NewZapLogger()
}

func ProvideServerConfig(cfg *Config) server.ServerConfig {
	return server.ServerConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}

func ProvideRouterConfig(cfg *Config) routes.RouterConfig {
	return routes.RouterConfig{
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,
	}
}

func ProvideRootHandler(cfg *Config, log logger.Logger) *handler.RootHandler {
	return handler.NewRootHandler(log, cfg.ServiceName)
}

func ProvideHealthHandler(cfg *Config, log logger.Logger) *handler.HealthHandler {
	return handler.NewHealthHandler(log, cfg.ServiceID)
}

// ProvideRouteInitializer returns the function that registers every route
// on the engine. The route table is the two liveness endpoints.
func ProvideRouteInitializer(
	rootHandler *handler.RootHandler,
	healthHandler *handler.HealthHandler,
) func(*gin.Engine, routes.RouteDependencies) {
	return func(router *gin.Engine, deps routes.RouteDependencies) {
		internalRoutes.InitRootRoutes(router, rootHandler, deps)
		internalRoutes.InitHealthRoutes(router, healthHandler, deps)
	}
}
