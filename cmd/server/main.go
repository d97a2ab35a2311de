package main

import (
	"kiro/commons/config"
	"kiro/commons/server"
	internalConfig "kiro/internal/config"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(config.ProvideFxLogger),
		fx.Provide(
			internalConfig.ProvideConfig,
			internalConfig.ProvideLogger,
			internalConfig.ProvideServerConfig,
			internalConfig.ProvideRouterConfig,
			internalConfig.ProvideRootHandler,
			internalConfig.ProvideHealthHandler,
			internalConfig.ProvideRouteInitializer,
			config.ProvideRouteDependencies,
			config.ProvideRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(func(*server.HTTPServer) {}),
	).Run()
}
