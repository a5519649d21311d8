package yadisk

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
	http_transport "github.com/oshokin/yadisk-grabber/internal/transport/http"
	"github.com/oshokin/yadisk-grabber/internal/utils"
)

// Client defines the interface for interacting with the Yandex Disk public resources API.
type Client interface {
	// FetchPublicResources fetches the listing behind a public key and normalizes it.
	FetchPublicResources(ctx context.Context, params *RequestParameters) (ResourceListing, error)
	// GetFileDownloadURL resolves a short-lived signed URL for one file inside a public resource.
	GetFileDownloadURL(ctx context.Context, publicKey, filePath string) (string, error)
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (*DownloadResult, error)
	// GetBaseURL returns the base URL of the public resources API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface over plain HTTP.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
}

// NewClient creates and returns a new instance of ClientImpl.
// The HTTP client carries a bounded per-request timeout and the
// logging/User-Agent transports.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseAPIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base API URL: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: timeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
	}, nil
}

// FetchPublicResources fetches the listing behind a public key.
// When the caller supplies no field selectors, a default set minimizing the
// upstream payload is substituted; when no limit is set, DefaultListingLimit
// applies. The upstream "_embedded" key is renamed to "embedded" before the
// listing is returned, so downstream consumers never see the private-looking key.
func (c *ClientImpl) FetchPublicResources(
	ctx context.Context,
	params *RequestParameters,
) (ResourceListing, error) {
	if strings.TrimSpace(params.PublicKey) == "" {
		return nil, ErrEmptyPublicKey
	}

	// Work on a copy so defaults never leak back into the caller's parameters.
	prepared := *params
	if prepared.Fields == nil {
		prepared.Fields = defaultListingFields
	}

	if prepared.Limit == nil {
		limit := DefaultListingLimit
		prepared.Limit = &limit
	}

	result, err := fetchJSONWithQuery[ResourceListing](c, ctx, "", prepared.Values())
	if err != nil {
		return nil, err
	}

	listing := *result.Data
	if embedded, ok := listing[privateEmbeddedKey]; ok {
		listing[publicEmbeddedKey] = embedded
		delete(listing, privateEmbeddedKey)

		logger.Debugf(ctx, "Renamed '%s' to '%s' in listing for public key: %s",
			privateEmbeddedKey, publicEmbeddedKey, params.PublicKey)
	}

	return listing, nil
}

// GetFileDownloadURL resolves a short-lived signed URL for one file inside a public resource.
// The public key has spaces mapped to '+' before percent-encoding,
// mirroring how the upstream expects keys derived from public URLs.
func (c *ClientImpl) GetFileDownloadURL(ctx context.Context, publicKey, filePath string) (string, error) {
	if strings.TrimSpace(publicKey) == "" {
		return "", ErrEmptyPublicKey
	}

	query := url.Values{}
	query.Set("public_key", strings.ReplaceAll(publicKey, " ", "+"))
	query.Set("path", filePath)

	result, err := fetchJSONWithQuery[getDownloadURLResponse](c, ctx, resourcesDownloadURI, query)
	if err != nil {
		return "", err
	}

	href := result.Data.Href
	if href == "" {
		return "", fmt.Errorf("%w: path '%s'", ErrMissingDownloadURL, filePath)
	}

	return href, nil
}

// DownloadFromURL downloads content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (*DownloadResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &DownloadResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// GetBaseURL returns the base URL of the public resources API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// FetchJSONResult carries a decoded payload along with the HTTP status code.
type FetchJSONResult[T any] struct {
	// Data is the decoded response payload, nil on failure.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// fetchJSONWithQuery fetches JSON from the specified URI with the specified query.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	c *ClientImpl,
	ctx context.Context,
	uri string,
	query url.Values,
) (*FetchJSONResult[T], error) {
	route := c.baseURL
	if uri != "" {
		var err error

		route, err = url.JoinPath(c.baseURL, uri)
		if err != nil {
			return nil, err
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}
