package yadisk

const (
	// resourcesDownloadURI is the URI path for the download-link endpoint,
	// relative to the public resources base URL.
	resourcesDownloadURI = "download"

	// privateEmbeddedKey is the upstream API's key for a folder's child resources.
	privateEmbeddedKey = "_embedded"

	// publicEmbeddedKey replaces privateEmbeddedKey in returned listings.
	// Template engines reject context keys starting with an underscore,
	// so the listing is normalized before it reaches any consumer.
	publicEmbeddedKey = "embedded"
)

// DefaultListingLimit is the embedded-resources limit applied when the caller
// does not set one. Effectively unbounded: single-request listings only,
// no pagination handling.
const DefaultListingLimit int64 = 1_000_000_000_000_000_000

// defaultListingFields is the selector set applied when the caller supplies none.
// These fields are not mandatory, but they keep the upstream payload down to
// the minimum the listing view needs.
//
//nolint:gochecknoglobals // Immutable default, used as a constant.
var defaultListingFields = []Field{
	FieldName,
	FieldPublicURL,
	FieldEmbeddedItemsName,
	FieldEmbeddedItemsType,
	FieldEmbeddedItemsMediaType,
	FieldEmbeddedItemsPublicURL,
	FieldPath,
}
