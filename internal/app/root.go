package app

import (
	"context"
	"encoding/json"

	yadisk_client "github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	yadisk_service "github.com/oshokin/yadisk-grabber/internal/service/yadisk"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the API client and the download service, then either lists
// the public resource (when no file paths are given) or downloads the
// requested files.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, publicURL string, filePaths []string) {
	diskClient, err := yadisk_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Yandex Disk client: %v", err)
	}

	s := yadisk_service.NewService(cfg, diskClient)

	if len(filePaths) == 0 {
		listResource(ctx, s, publicURL)
		return
	}

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintDownloadSummary(ctx)
	}()

	s.DownloadFiles(ctx, publicURL, filePaths)
}

// listResource fetches and prints the listing of a public resource.
func listResource(ctx context.Context, s yadisk_service.Service, publicURL string) {
	listing, err := s.ListResources(ctx, &yadisk_client.RequestParameters{PublicKey: publicURL})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list public resource: %v", err)
	}

	rendered, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to render listing: %v", err)
	}

	logger.Infof(ctx, "Listing of '%s':\n%s", publicURL, rendered)
}
