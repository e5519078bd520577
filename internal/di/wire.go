//go:build wireinject
// +build wireinject

package di

import (
	"SajuCore/pkg/config"
	"SajuCore/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Engine
		ProvideCalculator,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,
		ProvideCache,
		ProvideRateLimiter,

		// Repositories
		ProvideReadingStore,
		ProvideReadingPublisher,

		// Use cases
		ProvideReadingProcessor,
		ProvideInfoCatalogue,
		ProvideKafkaReadingsHandler,

		// HTTP and application server
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
