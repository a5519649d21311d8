package yadisk

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/config"
)

// Service provides methods for listing and downloading Yandex Disk public resources.
type Service interface {
	// ListResources fetches the normalized listing behind a public key.
	ListResources(ctx context.Context, params *yadisk.RequestParameters) (yadisk.ResourceListing, error)
	// DownloadFiles downloads the given files from a public resource, one by one.
	DownloadFiles(ctx context.Context, publicKey string, filePaths []string)
	// PrintDownloadSummary prints a formatted summary of download statistics.
	PrintDownloadSummary(ctx context.Context)
}

// ServiceImpl implements the download service over the public resources API client.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// diskClient is the client for interacting with the public resources API.
	diskClient yadisk.Client
	// stats tracks download statistics for the current session.
	stats *DownloadStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// NewService creates a download service instance with dependency-injected components.
func NewService(cfg *config.Config, diskClient yadisk.Client) Service {
	return &ServiceImpl{
		cfg:        cfg,
		diskClient: diskClient,
		stats:      new(DownloadStatistics),
		statsMutex: new(sync.Mutex),
	}
}

// ListResources fetches the normalized listing behind a public key.
func (s *ServiceImpl) ListResources(
	ctx context.Context,
	params *yadisk.RequestParameters,
) (yadisk.ResourceListing, error) {
	return s.diskClient.FetchPublicResources(ctx, params)
}

// markSessionStart resets the statistics for a new download session.
// The service outlives a single batch when it serves the web interface,
// so counters from earlier batches must not leak into the next summary.
func (s *ServiceImpl) markSessionStart() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	*s.stats = DownloadStatistics{StartTime: time.Now()}
}

// markSessionEnd records the session end time.
func (s *ServiceImpl) markSessionEnd() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.EndTime = time.Now()
}
