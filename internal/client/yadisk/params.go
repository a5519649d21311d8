package yadisk

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortOption is a resource listing sort key.
// Use Desc to request descending order.
type SortOption string

// Available sort keys.
const (
	SortByCreated  SortOption = "created"
	SortByModified SortOption = "modified"
	SortByName     SortOption = "name"
	SortByPath     SortOption = "path"
	SortBySize     SortOption = "size"
)

// Desc returns the descending variant of the sort key,
// prefixed with exactly one minus sign.
func (s SortOption) Desc() SortOption {
	return "-" + SortOption(strings.TrimPrefix(string(s), "-"))
}

// PreviewSize is a preview size for image resources.
// The image is scaled to fit the dimension, preserving the aspect ratio.
type PreviewSize string

// Predefined preview sizes.
const (
	PreviewSizeS    PreviewSize = "S"    // 150 pixels
	PreviewSizeM    PreviewSize = "M"    // 300 pixels
	PreviewSizeL    PreviewSize = "L"    // 500 pixels
	PreviewSizeXL   PreviewSize = "XL"   // 800 pixels
	PreviewSizeXXL  PreviewSize = "XXL"  // 1024 pixels
	PreviewSizeXXXL PreviewSize = "XXXL" // 1280 pixels
)

// PreviewResolution returns a custom preview size in the "<width>x<height>" format.
// Either dimension may be omitted by passing zero, but not both.
func PreviewResolution(width, height int64) (PreviewSize, error) {
	switch {
	case width > 0 && height > 0:
		return PreviewSize(fmt.Sprintf("%dx%d", width, height)), nil
	case width > 0:
		return PreviewSize(fmt.Sprintf("%dx", width)), nil
	case height > 0:
		return PreviewSize(fmt.Sprintf("x%d", height)), nil
	default:
		return "", ErrInvalidPreviewResolution
	}
}

// Field is a dotted-path selector identifying one attribute to include
// in a listing response. Selectors keep upstream payloads small.
type Field string

// Resource fields.
const (
	FieldAntivirusStatus  Field = ".antivirus_status"
	FieldCommentIDs       Field = ".comment_ids"
	FieldCreated          Field = ".created"
	FieldCustomProperties Field = ".custom_properties"
	FieldEmbedded         Field = "._embedded"
	FieldExif             Field = ".exif"
	FieldFile             Field = ".file"
	FieldMD5              Field = ".md5"
	FieldMediaType        Field = ".media_type"
	FieldMimeType         Field = ".mime_type"
	FieldModified         Field = ".modified"
	FieldName             Field = ".name"
	FieldOriginPath       Field = ".origin_path"
	FieldOwner            Field = ".owner"
	FieldPath             Field = ".path"
	FieldPreview          Field = ".preview"
	FieldPublicKey        Field = ".public_key"
	FieldPublicURL        Field = ".public_url"
	FieldResourceID       Field = ".resource_id"
	FieldRevision         Field = ".revision"
	FieldSHA256           Field = ".sha256"
	FieldSize             Field = ".size"
	FieldSizes            Field = ".sizes"
	FieldType             Field = ".type"
	FieldViewsCount       Field = ".views_count"
)

// Embedded collection fields.
const (
	FieldEmbeddedItems     = FieldEmbedded + ".items"
	FieldEmbeddedLimit     = FieldEmbedded + ".limit"
	FieldEmbeddedOffset    = FieldEmbedded + ".offset"
	FieldEmbeddedPath      = FieldEmbedded + FieldPath
	FieldEmbeddedPublicKey = FieldEmbedded + FieldPublicKey
	FieldEmbeddedSort      = FieldEmbedded + ".sort"
	FieldEmbeddedTotal     = FieldEmbedded + ".total"
)

// Embedded item fields.
const (
	FieldEmbeddedItemsAntivirusStatus  = FieldEmbeddedItems + FieldAntivirusStatus
	FieldEmbeddedItemsCommentIDs       = FieldEmbeddedItems + FieldCommentIDs
	FieldEmbeddedItemsCreated          = FieldEmbeddedItems + FieldCreated
	FieldEmbeddedItemsCustomProperties = FieldEmbeddedItems + FieldCustomProperties
	FieldEmbeddedItemsExif             = FieldEmbeddedItems + FieldExif
	FieldEmbeddedItemsFile             = FieldEmbeddedItems + FieldFile
	FieldEmbeddedItemsMD5              = FieldEmbeddedItems + FieldMD5
	FieldEmbeddedItemsMediaType        = FieldEmbeddedItems + FieldMediaType
	FieldEmbeddedItemsMimeType         = FieldEmbeddedItems + FieldMimeType
	FieldEmbeddedItemsModified         = FieldEmbeddedItems + FieldModified
	FieldEmbeddedItemsName             = FieldEmbeddedItems + FieldName
	FieldEmbeddedItemsPath             = FieldEmbeddedItems + FieldPath
	FieldEmbeddedItemsPreview          = FieldEmbeddedItems + FieldPreview
	FieldEmbeddedItemsPublicKey        = FieldEmbeddedItems + FieldPublicKey
	FieldEmbeddedItemsPublicURL        = FieldEmbeddedItems + FieldPublicURL
	FieldEmbeddedItemsResourceID       = FieldEmbeddedItems + FieldResourceID
	FieldEmbeddedItemsRevision         = FieldEmbeddedItems + FieldRevision
	FieldEmbeddedItemsSHA256           = FieldEmbeddedItems + FieldSHA256
	FieldEmbeddedItemsSize             = FieldEmbeddedItems + FieldSize
	FieldEmbeddedItemsSizes            = FieldEmbeddedItems + FieldSizes
	FieldEmbeddedItemsType             = FieldEmbeddedItems + FieldType
)

// RequestParameters describes a public resource listing request.
// PublicKey is required; every other field is optional and,
// when left unset, is omitted from the outgoing query.
type RequestParameters struct {
	// PublicKey is the key or public URL of the shared resource.
	PublicKey string
	// Fields selects the attributes to include in the response.
	// A nil slice lets the client substitute its default selector set;
	// an empty non-nil slice sends no selectors and suppresses the default.
	Fields []Field
	// Limit caps the number of embedded resources returned.
	Limit *int64
	// Offset skips that many embedded resources from the beginning of the list.
	Offset *int64
	// Path is a relative path inside the public folder, starting with "/".
	Path string
	// PreviewCrop requests a cropped preview.
	PreviewCrop *bool
	// PreviewSize is the requested preview size.
	PreviewSize PreviewSize
	// Sort is the sort key, possibly in its descending form.
	Sort SortOption
}

// Values encodes the parameters into a query-string-ready mapping.
// Unset optional fields are dropped rather than sent as empty values.
func (p *RequestParameters) Values() url.Values {
	values := url.Values{}
	values.Set("public_key", p.PublicKey)

	if len(p.Fields) > 0 {
		values.Set("fields", serializeFields(p.Fields))
	}

	if p.Limit != nil {
		values.Set("limit", strconv.FormatInt(*p.Limit, 10))
	}

	if p.Offset != nil {
		values.Set("offset", strconv.FormatInt(*p.Offset, 10))
	}

	if p.Path != "" {
		values.Set("path", p.Path)
	}

	if p.PreviewCrop != nil {
		values.Set("preview_crop", strconv.FormatBool(*p.PreviewCrop))
	}

	if p.PreviewSize != "" {
		values.Set("preview_size", string(p.PreviewSize))
	}

	if p.Sort != "" {
		values.Set("sort", string(p.Sort))
	}

	return values
}

// serializeFields joins selectors with commas,
// stripping each selector's leading separator and preserving input order.
func serializeFields(fields []Field) string {
	paths := make([]string, 0, len(fields))
	for _, field := range fields {
		paths = append(paths, strings.TrimPrefix(string(field), "."))
	}

	return strings.Join(paths, ",")
}
