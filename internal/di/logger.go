package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Debug,
		Encoding:    cfg.Log.Encoding,
	})
}
