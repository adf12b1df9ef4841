package pexels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Pexels API endpoint
	DefaultBaseURL = "https://api.pexels.com"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pexplore"
)

// Client represents a Pexels API client. It holds only immutable
// configuration, so a single instance is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Pexels client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	options := clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	// Ensure baseURL doesn't have trailing slash
	options.baseURL = strings.TrimRight(options.baseURL, "/")

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	return &Client{
		baseURL:    options.baseURL,
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// get performs an authenticated GET request and returns the response body.
// Non-2xx statuses come back as *APIError, transport failures as
// *RequestError. No retries are attempted.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{URL: reqURL, Err: err}
	}

	// Pexels expects the raw key, no Bearer prefix
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("url", reqURL).
		Msg("Making Pexels API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: reqURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// newAPIError builds an APIError from a non-2xx response, pulling the
// message from the body's error field when one is present.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else if payload.Code != "" {
			apiErr.Message = payload.Code
		}
	}

	return apiErr
}

// unmarshalBody decodes a response body, converting schema mismatches into
// *DecodeError with the offending field path and a snippet of the raw body.
func unmarshalBody(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &DecodeError{
				Field:  typeErr.Field,
				Detail: fmt.Sprintf("expected %s, got JSON %s near %q", typeErr.Type, typeErr.Value, bodySnippet(body, typeErr.Offset)),
				Err:    err,
			}
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return &DecodeError{
				Detail: fmt.Sprintf("malformed JSON near %q", bodySnippet(body, syntaxErr.Offset)),
				Err:    err,
			}
		}
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			return decodeErr
		}
		return &DecodeError{Detail: err.Error(), Err: err}
	}
	return nil
}

// bodySnippet returns a short window of the body around offset for error
// messages.
func bodySnippet(body []byte, offset int64) string {
	const window = 20
	if offset < 0 || offset > int64(len(body)) {
		offset = int64(len(body))
	}
	start := offset - window
	if start < 0 {
		start = 0
	}
	end := offset + window
	if end > int64(len(body)) {
		end = int64(len(body))
	}
	return string(body[start:end])
}

// prefixDecodeError prepends a path prefix to a DecodeError's field so
// nested decodes report their position in the enclosing document.
func prefixDecodeError(err error, prefix string) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) && decodeErr.Field != "" {
		return &DecodeError{
			Field:  prefix + decodeErr.Field,
			Detail: decodeErr.Detail,
			Err:    decodeErr.Err,
		}
	}
	return err
}

// SearchPhotos searches for photos matching the query
func (c *Client) SearchPhotos(ctx context.Context, params SearchPhotosParams) (*PhotoPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/search", params.values())
	if err != nil {
		return nil, err
	}

	var page PhotoPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", params.Query).
		Int("count", len(page.Photos)).
		Int("total", page.TotalResults).
		Msg("Retrieved photo search results")

	return &page, nil
}

// CuratedPhotos returns the curated photo feed
func (c *Client) CuratedPhotos(ctx context.Context, params CuratedPhotosParams) (*PhotoPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/curated", params.values())
	if err != nil {
		return nil, err
	}

	var page PhotoPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetPhoto retrieves a single photo by ID
func (c *Client) GetPhoto(ctx context.Context, id int) (*Photo, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/photos/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var photo Photo
	if err := unmarshalBody(body, &photo); err != nil {
		return nil, err
	}
	if err := photo.validate(""); err != nil {
		return nil, err
	}

	return &photo, nil
}

// SearchVideos searches for videos matching the query
func (c *Client) SearchVideos(ctx context.Context, params SearchVideosParams) (*VideoPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/videos/search", params.values())
	if err != nil {
		return nil, err
	}

	var page VideoPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", params.Query).
		Int("count", len(page.Videos)).
		Int("total", page.TotalResults).
		Msg("Retrieved video search results")

	return &page, nil
}

// PopularVideos returns the popular video feed
func (c *Client) PopularVideos(ctx context.Context, params PopularVideosParams) (*VideoPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/videos/popular", params.values())
	if err != nil {
		return nil, err
	}

	var page VideoPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetVideo retrieves a single video by ID
func (c *Client) GetVideo(ctx context.Context, id int) (*Video, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/videos/videos/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var video Video
	if err := unmarshalBody(body, &video); err != nil {
		return nil, err
	}
	if err := video.validate(""); err != nil {
		return nil, err
	}

	return &video, nil
}

// SearchCollections returns the user's collections
func (c *Client) SearchCollections(ctx context.Context, params CollectionsParams) (*CollectionPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/collections", params.values())
	if err != nil {
		return nil, err
	}

	var page CollectionPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return &page, nil
}

// FeaturedCollections returns the featured collections feed
func (c *Client) FeaturedCollections(ctx context.Context, params CollectionsParams) (*CollectionPage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/collections/featured", params.values())
	if err != nil {
		return nil, err
	}

	var page CollectionPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	return &page, nil
}

// CollectionMedia returns the media (photos and videos) within a single
// collection, preserving the API's order
func (c *Client) CollectionMedia(ctx context.Context, id string, params CollectionMediaParams) (*MediaPage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidParam("id", "collection id must not be empty")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/v1/collections/"+url.PathEscape(id), params.values())
	if err != nil {
		return nil, err
	}

	var page MediaPage
	if err := unmarshalBody(body, &page); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("collection", id).
		Int("count", len(page.Media)).
		Msg("Retrieved collection media")

	return &page, nil
}
