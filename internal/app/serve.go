package app

import (
	"context"
	"time"

	yadisk_client "github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	"github.com/oshokin/yadisk-grabber/internal/server"
	yadisk_service "github.com/oshokin/yadisk-grabber/internal/service/yadisk"
)

// serverShutdownTimeout bounds how long a graceful shutdown may take.
const serverShutdownTimeout = 10 * time.Second

// ExecuteServeCommand starts the web interface and blocks until the context
// is canceled (CTRL+C) or the server fails.
func ExecuteServeCommand(ctx context.Context, cfg *config.Config) {
	diskClient, err := yadisk_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Yandex Disk client: %v", err)
	}

	s := yadisk_service.NewService(cfg, diskClient)
	webServer := server.NewServer(cfg, s)

	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- webServer.Start(ctx)
	}()

	select {
	case err = <-serverErrors:
		if err != nil {
			logger.Fatalf(ctx, "Web interface failed: %v", err)
		}
	case <-ctx.Done():
		logger.Info(ctx, "Shutting down web interface")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		if err = webServer.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "Failed to shut down web interface gracefully: %v", err)
		}
	}
}
