package yadisk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/constants"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	"github.com/oshokin/yadisk-grabber/internal/utils"
)

const (
	// File options for creating a new file (fails if the file already exists).
	createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY

	// Phases used when recording download errors.
	phaseCreatingOutputPath   = "creating output path"
	phaseResolvingDownloadURL = "resolving download URL"
	phaseSavingFile           = "saving file"
)

// DownloadFiles downloads the given files from a public resource, one by one.
// A failure on one file is logged and recorded, and the loop moves on to the
// next file, so a single broken path never aborts the whole session.
func (s *ServiceImpl) DownloadFiles(ctx context.Context, publicKey string, filePaths []string) {
	s.markSessionStart()
	defer s.markSessionEnd()

	if err := os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		logger.Errorf(ctx, "Failed to create output path: %v", err)

		// Record every requested file as failed so the summary shows
		// that the batch went nowhere instead of staying silent.
		wrapped := fmt.Errorf("%s: %w", phaseCreatingOutputPath, err)
		for _, filePath := range filePaths {
			s.recordFailure(publicKey, filePath, wrapped)
		}

		return
	}

	logger.Info(ctx, "Starting download process")

	filesCount := len(filePaths)

	for index, filePath := range filePaths {
		// Check if context was canceled (CTRL+C pressed) - stop immediately.
		select {
		case <-ctx.Done():
			return
		default:
		}

		logger.Infof(ctx, "Downloading file: %s (%d / %d)", filePath, index+1, filesCount)

		bytesWritten, err := s.downloadSingleFile(ctx, publicKey, filePath)
		if err != nil {
			logger.Errorf(ctx, "Failed to download file '%s': %v", filePath, err)
			s.recordFailure(publicKey, filePath, err)

			continue
		}

		s.incrementFileDownloaded(bytesWritten)
	}

	logger.Info(ctx, "Download process completed")
}

// downloadSingleFile resolves a signed URL for one file and saves its content
// under the output directory. The content goes to a temporary file first and
// is renamed into place only after a complete download, so interrupted
// transfers never leave a truncated file under the final name.
func (s *ServiceImpl) downloadSingleFile(ctx context.Context, publicKey, filePath string) (int64, error) {
	downloadURL, err := s.diskClient.GetFileDownloadURL(ctx, publicKey, filePath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", phaseResolvingDownloadURL, err)
	}

	result, err := s.diskClient.DownloadFromURL(ctx, downloadURL)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", phaseSavingFile, err)
	}

	defer result.Body.Close() //nolint:errcheck // Error on close is not critical here.

	destinationPath := filepath.Join(s.cfg.OutputPath, s.localFilename(filePath))

	bytesWritten, err := s.saveToFile(ctx, result, destinationPath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", phaseSavingFile, err)
	}

	logger.Debugf(ctx, "Saved file '%s' to '%s'", filePath, destinationPath)

	return bytesWritten, nil
}

// saveToFile streams the download body into a temporary file next to the
// destination and renames it into place once the copy finishes.
func (s *ServiceImpl) saveToFile(
	ctx context.Context,
	result *yadisk.DownloadResult,
	destinationPath string,
) (int64, error) {
	tempPath := destinationPath + "." + uuid.New().String() + ".part"

	file, err := os.OpenFile(filepath.Clean(tempPath), createNewFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var downloadSucceeded bool

	defer func() {
		closeErr := file.Close()

		// Clean up the temporary file if the download failed.
		if !downloadSucceeded {
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempPath, removeErr, closeErr)
			}
		}
	}()

	writer := s.progressWriter(file, result.TotalBytes)

	bytesWritten, err := io.Copy(writer, result.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to save content: %w", err)
	}

	if err = file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Rename(tempPath, destinationPath); err != nil {
		return 0, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	downloadSucceeded = true

	return bytesWritten, nil
}

// progressWriter wraps the destination with a progress bar when enabled.
// Progress bars are skipped for responses without a known content length.
func (s *ServiceImpl) progressWriter(file io.Writer, totalBytes int64) io.Writer {
	if !s.cfg.ShowProgressBar || totalBytes <= 0 {
		return file
	}

	bar := progressbar.DefaultBytes(totalBytes, "Downloading")

	return io.MultiWriter(file, bar)
}

// localFilename maps a file path inside a public resource to a flat local
// filename: the leading slash goes away and the rest is sanitized, so nested
// paths land directly in the output directory.
func (s *ServiceImpl) localFilename(filePath string) string {
	return utils.SanitizeFilename(strings.TrimPrefix(filePath, "/"))
}
