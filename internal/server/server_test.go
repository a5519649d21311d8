package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/yadisk-grabber/internal/client/yadisk"
	"github.com/oshokin/yadisk-grabber/internal/config"
	mock_yadisk_service "github.com/oshokin/yadisk-grabber/internal/service/yadisk/mocks"
)

func newTestServer(t *testing.T) (*Server, *mock_yadisk_service.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mock_yadisk_service.NewMockService(ctrl)
	cfg := &config.Config{ServerAddress: ":0", OutputPath: t.TempDir()}

	return NewServer(cfg, mockService), mockService
}

// TestIndexPage tests that the landing page renders the URL form.
func TestIndexPage(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	server.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="public_url"`)
}

// TestListFiles tests the listing page.
func TestListFiles(t *testing.T) {
	t.Parallel()

	t.Run("renders listing items", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)

		listing := yadisk.ResourceListing{
			"name": "shared folder",
			"embedded": map[string]any{
				"items": []any{
					map[string]any{
						"name":       "report.pdf",
						"path":       "/report.pdf",
						"type":       "file",
						"media_type": "document",
						"size":       float64(2048),
					},
					map[string]any{
						"name": "photos",
						"path": "/photos",
						"type": "dir",
					},
				},
			},
		}

		mockService.EXPECT().
			ListResources(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params *yadisk.RequestParameters) (yadisk.ResourceListing, error) {
				assert.Equal(t, "https://disk.yandex.ru/d/example", params.PublicKey)
				assert.Equal(t, listingPageFields, params.Fields)

				return listing, nil
			})

		target := "/files?public_url=" + url.QueryEscape("https://disk.yandex.ru/d/example")
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "shared folder")
		assert.Contains(t, body, "report.pdf")
		assert.Contains(t, body, "photos")
		// Only files get a download checkbox.
		assert.Contains(t, body, `value="/report.pdf"`)
		assert.NotContains(t, body, `value="/photos"`)
	})

	t.Run("missing public_url", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("listing failure maps to bad gateway", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)

		mockService.EXPECT().
			ListResources(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("upstream exploded"))

		req := httptest.NewRequest(http.MethodGet, "/files?public_url=key", nil)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

// TestDownloadFiles tests the download form handler.
func TestDownloadFiles(t *testing.T) {
	t.Parallel()

	t.Run("downloads selected files and redirects", func(t *testing.T) {
		t.Parallel()

		server, mockService := newTestServer(t)

		mockService.EXPECT().
			DownloadFiles(gomock.Any(), "https://disk.yandex.ru/d/example", []string{"/a.txt", "/b.txt"})
		mockService.EXPECT().
			PrintDownloadSummary(gomock.Any())

		form := url.Values{}
		form.Set("public_url", "https://disk.yandex.ru/d/example")
		form.Add("selected_files", "/a.txt")
		form.Add("selected_files", "/b.txt")

		req := httptest.NewRequest(http.MethodPost, "/files/download", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "downloaded=1")
	})

	t.Run("no files selected", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		form := url.Values{}
		form.Set("public_url", "key")

		req := httptest.NewRequest(http.MethodPost, "/files/download", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing public_url", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)

		form := url.Values{}
		form.Add("selected_files", "/a.txt")

		req := httptest.NewRequest(http.MethodPost, "/files/download", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// TestHealth tests the liveness endpoint.
func TestHealth(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestListingItems tests extraction of embedded items from a listing.
func TestListingItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		listing  yadisk.ResourceListing
		expected []FileItem
	}{
		{
			name:     "no embedded collection",
			listing:  yadisk.ResourceListing{"name": "just a file"},
			expected: []FileItem{},
		},
		{
			name: "items with odd shapes are skipped",
			listing: yadisk.ResourceListing{
				"embedded": map[string]any{
					"items": []any{
						"not a map",
						map[string]any{"name": "a.txt", "path": "/a.txt", "type": "file"},
					},
				},
			},
			expected: []FileItem{
				{Name: "a.txt", Path: "/a.txt", Type: "file"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := listingItems(tt.listing)
			if len(tt.expected) == 0 {
				assert.Empty(t, items)
				return
			}

			assert.Equal(t, tt.expected, items)
		})
	}
}

// TestFileItemHumanSize tests human-readable sizes.
func TestFileItemHumanSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FileItem{Size: 0}.HumanSize())
	assert.Equal(t, "2.0 kB", FileItem{Size: 2048}.HumanSize())
}
