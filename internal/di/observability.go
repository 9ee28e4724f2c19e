package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/internal/observability"
)

// ObservabilityModule provides tracing and metrics dependencies
var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		provideTracingProvider,
		provideMetricsProvider,
	),
)

func provideTracingProvider(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*observability.TracingProvider, error) {
	tp, err := observability.NewTracingProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}

func provideMetricsProvider(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*observability.MetricsProvider, error) {
	mp, err := observability.NewMetricsProvider(&observability.MetricsConfig{
		Enabled:        true,
		ServiceName:    cfg.App.Name,
		PrometheusPath: "/metrics",
	}, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mp.Shutdown(ctx)
		},
	})

	return mp, nil
}
