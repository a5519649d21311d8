package yadisk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/yadisk-grabber/internal/logger"
)

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// incrementFileDownloaded increments the downloaded files counter and adds bytes.
func (s *ServiceImpl) incrementFileDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.FilesDownloaded++
	s.stats.FilesProcessed++
	s.stats.TotalBytesDownloaded += bytes
}

// recordFailure increments the failed files counter and records the error details.
func (s *ServiceImpl) recordFailure(publicKey, filePath string, err error) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.FilesFailed++
	s.stats.FilesProcessed++
	s.stats.Errors = append(s.stats.Errors, DownloadError{
		FilePath:     filePath,
		PublicKey:    publicKey,
		Phase:        errorPhase(err),
		ErrorMessage: err.Error(),
	})
}

// errorPhase extracts the phase prefix from a wrapped download error.
func errorPhase(err error) string {
	message := err.Error()
	for _, phase := range []string{phaseCreatingOutputPath, phaseResolvingDownloadURL, phaseSavingFile} {
		if strings.HasPrefix(message, phase) {
			return phase
		}
	}

	return "downloading file"
}

// PrintDownloadSummary prints a formatted summary of download statistics.
func (s *ServiceImpl) PrintDownloadSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	stats := s.stats

	// If nothing was processed, don't print summary.
	if stats.FilesProcessed == 0 {
		return
	}

	// Check if the context was canceled (CTRL+C or timeout).
	wasInterrupted := ctx.Err() != nil

	s.printSummaryHeader(ctx, wasInterrupted)
	s.printFileStatistics(ctx, stats)
	s.printDataTransferStatistics(ctx, stats)
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	s.printErrorDetails(ctx, stats)
	s.printFinalMessage(ctx, wasInterrupted, stats)
}

// printSummaryHeader prints the summary header.
func (s *ServiceImpl) printSummaryHeader(ctx context.Context, wasInterrupted bool) {
	logger.Info(ctx, "")
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")

	if wasInterrupted {
		logger.Info(ctx, "           DOWNLOAD SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                     DOWNLOAD SUMMARY")
	}

	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}

// printFileStatistics prints file download statistics.
func (s *ServiceImpl) printFileStatistics(ctx context.Context, stats *DownloadStatistics) {
	logger.Infof(ctx, "Files:            %d total processed", stats.FilesProcessed)

	if stats.FilesDownloaded > 0 {
		logger.Infof(ctx, "  Downloaded:     %d", stats.FilesDownloaded)
	}

	if stats.FilesFailed > 0 {
		logger.Infof(ctx, "  Failed:         %d", stats.FilesFailed)
	}

	if stats.FilesProcessed > 0 {
		successRate := float64(stats.FilesDownloaded) / float64(stats.FilesProcessed) * 100
		logger.Infof(ctx, "  Success Rate:   %.1f%%", successRate)
	}
}

// printDataTransferStatistics prints data transfer statistics.
func (s *ServiceImpl) printDataTransferStatistics(ctx context.Context, stats *DownloadStatistics) {
	if stats.TotalBytesDownloaded > 0 {
		logger.Info(ctx, "")
		//nolint:gosec // TotalBytesDownloaded is always positive, no overflow risk.
		logger.Infof(ctx, "Data Downloaded:  %s", humanize.Bytes(uint64(stats.TotalBytesDownloaded)))
	}

	// Print duration if we have both start and end times.
	if stats.StartTime.IsZero() || stats.EndTime.IsZero() {
		return
	}

	duration := stats.EndTime.Sub(stats.StartTime)

	// Only show if duration is meaningful (> 100ms).
	if duration <= 100*time.Millisecond {
		return
	}

	logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

	if stats.TotalBytesDownloaded > 0 {
		bytesPerSecond := float64(stats.TotalBytesDownloaded) / duration.Seconds()
		logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond)))
	}
}

// printErrorDetails prints detailed error information if any errors occurred.
func (s *ServiceImpl) printErrorDetails(ctx context.Context, stats *DownloadStatistics) {
	if len(stats.Errors) == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Errorf(ctx, "ERRORS ENCOUNTERED: %d", len(stats.Errors))

	for i := range stats.Errors {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "  [%d] %s", i+1, stats.Errors[i].FilePath)
		logger.Errorf(ctx, "      Phase: %s", stats.Errors[i].Phase)
		logger.Errorf(ctx, "      Error: %s", stats.Errors[i].ErrorMessage)
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}

// printFinalMessage prints a helpful message based on download results.
func (s *ServiceImpl) printFinalMessage(ctx context.Context, wasInterrupted bool, stats *DownloadStatistics) {
	switch {
	case wasInterrupted:
		logger.Info(ctx, "")
		logger.Warn(ctx, "Download interrupted by user (CTRL+C).")

		if stats.FilesDownloaded > 0 {
			logger.Infof(ctx, "Successfully downloaded %d file(s) before interruption.", stats.FilesDownloaded)
		}
	case len(stats.Errors) > 0:
		logger.Info(ctx, "")
		logger.Warnf(ctx, "%d error(s) occurred during download. See detailed error log above.", len(stats.Errors))
	case stats.FilesDownloaded > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All downloads completed successfully!")
	}
}
