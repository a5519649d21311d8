package yadisk

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyPublicKey indicates that the required public key is missing.
	ErrEmptyPublicKey = errors.New("public key cannot be empty")
	// ErrMissingDownloadURL indicates that the upstream response carried no download link.
	ErrMissingDownloadURL = errors.New("download URL is missing in upstream response")
	// ErrInvalidPreviewResolution indicates that neither a width nor a height was supplied.
	ErrInvalidPreviewResolution = errors.New("preview resolution requires a width, a height, or both")
)
