package yadisk

import "io"

// ResourceListing is the normalized listing response: resource metadata plus,
// for folders, an embedded collection of child entries under the "embedded" key.
type ResourceListing map[string]any

// DownloadResult wraps a file content stream along with its total size.
type DownloadResult struct {
	// Body is the content stream. The caller must close it.
	Body io.ReadCloser
	// TotalBytes is the content length, or -1 when unknown.
	TotalBytes int64
}

// getDownloadURLResponse represents the download-link endpoint payload.
type getDownloadURLResponse struct {
	// Href is the short-lived signed URL granting direct access to the file's bytes.
	Href string `json:"href"`
	// Method is the HTTP method to use with Href.
	Method string `json:"method"`
	// Templated indicates whether Href contains URL template parameters.
	Templated bool `json:"templated"`
}
