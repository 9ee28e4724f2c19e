package di

import (
	"testing"

	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/config"
)

func TestPrintBanner(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "connecthub-test",
			Version:     "1.0.0",
			Environment: "test",
		},
	}

	// Just ensure PrintBanner doesn't panic
	PrintBanner(cfg, zap.NewNop())
}

func TestProvideLogger(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Debug: true},
		Log: config.LogConfig{Level: "debug", Encoding: "console"},
	}

	logger, err := provideLogger(cfg)
	if err != nil {
		t.Fatalf("provideLogger() error = %v", err)
	}
	if logger == nil {
		t.Error("provideLogger() returned nil")
	}
}

func TestProvideLogger_Production(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Debug: false},
		Log: config.LogConfig{Level: "info", Encoding: "json"},
	}

	logger, err := provideLogger(cfg)
	if err != nil {
		t.Fatalf("provideLogger() error = %v", err)
	}
	if logger == nil {
		t.Error("provideLogger() returned nil")
	}
}

func TestProvideTokenDenylist_MemoryFallback(t *testing.T) {
	denylist := provideTokenDenylist(&RedisDatabase{})
	if denylist == nil {
		t.Fatal("provideTokenDenylist() returned nil")
	}
}

func TestModulesNotNil(t *testing.T) {
	tests := []struct {
		name   string
		module interface{}
	}{
		{"AppModule", AppModule},
		{"ConfigModule", ConfigModule},
		{"LoggerModule", LoggerModule},
		{"DatabaseModule", DatabaseModule},
		{"DAOModule", DAOModule},
		{"RepositoryModule", RepositoryModule},
		{"SecurityModule", SecurityModule},
		{"ServiceModule", ServiceModule},
		{"MiddlewareModule", MiddlewareModule},
		{"ControllerModule", ControllerModule},
		{"ObservabilityModule", ObservabilityModule},
		{"HTTPServerModule", HTTPServerModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.module == nil {
				t.Errorf("%s is nil", tt.name)
			}
		})
	}
}
