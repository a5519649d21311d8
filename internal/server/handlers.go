package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"

	"github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	"github.com/oshokin/yadisk-grabber/internal/utils"
)

// listingPageFields is the selector set used by the files page:
// enough to render the table and to submit file downloads back.
var listingPageFields = []yadisk.Field{
	yadisk.FieldName,
	yadisk.FieldType,
	yadisk.FieldEmbeddedItemsName,
	yadisk.FieldEmbeddedItemsPath,
	yadisk.FieldEmbeddedItemsType,
	yadisk.FieldEmbeddedItemsMediaType,
	yadisk.FieldEmbeddedItemsSize,
}

// FileItem is one row of the files page.
type FileItem struct {
	// Name is the display name of the item.
	Name string
	// Path is the path of the item inside the public resource.
	Path string
	// Type is "file" or "dir".
	Type string
	// MediaType is the upstream media type classification for files.
	MediaType string
	// Size is the file size in bytes, zero for folders.
	Size int64
}

// HumanSize returns a human-readable file size, empty for folders.
func (fi FileItem) HumanSize() string {
	if fi.Size <= 0 {
		return ""
	}

	//nolint:gosec // Size is checked to be positive above.
	return humanize.Bytes(uint64(fi.Size))
}

// filesPageData carries everything the files template renders.
type filesPageData struct {
	// PublicURL is the public URL of the listed resource.
	PublicURL string
	// ResourceName is the display name of the resource.
	ResourceName string
	// Items are the rows of the listing table.
	Items []FileItem
	// Downloaded reports that a download was just completed.
	Downloaded bool
}

// indexPage renders the landing form.
func (s *Server) indexPage(c echo.Context) error {
	return c.Render(http.StatusOK, "index", nil)
}

// listFiles fetches the listing for the submitted public URL and renders it.
func (s *Server) listFiles(c echo.Context) error {
	publicURL := strings.TrimSpace(c.QueryParam("public_url"))
	if publicURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "public_url query parameter is required")
	}

	listing, err := s.diskService.ListResources(c.Request().Context(), &yadisk.RequestParameters{
		PublicKey: publicURL,
		Fields:    listingPageFields,
	})
	if err != nil {
		logger.Errorf(c.Request().Context(), "Failed to list public resource '%s': %v", publicURL, err)

		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch the public resource listing")
	}

	return c.Render(http.StatusOK, "files", &filesPageData{
		PublicURL:    publicURL,
		ResourceName: stringValue(listing, "name"),
		Items:        listingItems(listing),
		Downloaded:   c.QueryParam("downloaded") == "1",
	})
}

// downloadFiles downloads the selected files and redirects back to the listing.
func (s *Server) downloadFiles(c echo.Context) error {
	publicURL := strings.TrimSpace(c.FormValue("public_url"))
	if publicURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "public_url form value is required")
	}

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	selectedFiles := form["selected_files"]
	if len(selectedFiles) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no files selected")
	}

	s.diskService.DownloadFiles(c.Request().Context(), publicURL, selectedFiles)
	s.diskService.PrintDownloadSummary(c.Request().Context())

	redirectURL := "/files?downloaded=1&public_url=" + url.QueryEscape(publicURL)

	return c.Redirect(http.StatusSeeOther, redirectURL)
}

// health reports service liveness.
func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// listingItems extracts the embedded items of a normalized listing.
// Anything that does not look like an item map is skipped.
func listingItems(listing yadisk.ResourceListing) []FileItem {
	embedded, ok := listing["embedded"].(map[string]any)
	if !ok {
		return nil
	}

	rawItems, ok := embedded["items"].([]any)
	if !ok {
		return nil
	}

	itemMaps := make([]map[string]any, 0, len(rawItems))

	for _, rawItem := range rawItems {
		if item, ok := rawItem.(map[string]any); ok {
			itemMaps = append(itemMaps, item)
		}
	}

	return utils.Map(itemMaps, func(item map[string]any) FileItem {
		return FileItem{
			Name:      stringValue(item, "name"),
			Path:      stringValue(item, "path"),
			Type:      stringValue(item, "type"),
			MediaType: stringValue(item, "media_type"),
			Size:      int64Value(item, "size"),
		}
	})
}

func stringValue(m map[string]any, key string) string {
	value, _ := m[key].(string)

	return value
}

func int64Value(m map[string]any, key string) int64 {
	// JSON numbers decode as float64.
	value, _ := m[key].(float64)

	return int64(value)
}
