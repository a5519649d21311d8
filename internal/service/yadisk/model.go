package yadisk

import "time"

// DownloadStatistics tracks metrics for a download session.
type DownloadStatistics struct {
	// StartTime is when the download session began.
	StartTime time.Time
	// EndTime is when the download session completed.
	EndTime time.Time
	// FilesProcessed is the total number of files attempted.
	FilesProcessed int64
	// FilesDownloaded is the number of files successfully downloaded.
	FilesDownloaded int64
	// FilesFailed is the number of files that failed to download.
	FilesFailed int64
	// TotalBytesDownloaded is the total size of downloaded content in bytes.
	TotalBytesDownloaded int64
	// Errors is a list of all errors encountered during the download process.
	Errors []DownloadError
}

// DownloadError represents a single error that occurred during download.
type DownloadError struct {
	// FilePath is the path of the file inside the public resource.
	FilePath string
	// PublicKey is the public key or URL of the resource the file belongs to.
	PublicKey string
	// Phase indicates when the error occurred (e.g., "resolving download URL", "saving file").
	Phase string
	// ErrorMessage is the error message.
	ErrorMessage string
}
