package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/api/schema"
	"io"
	"net/http"
	"strings"
	"time"
)

// apiPrefix is the path prefix every endpoint of the asset manager API lives under
const apiPrefix = "/api"

// TokenFunc returns the current bearer token; an empty token means the request is sent anonymously
type TokenFunc func() string

// Client represents a client of the asset manager REST API.
// Every method sends exactly one request; there are no retries and no caching.
type Client struct {
	baseURL        string
	tokens         TokenFunc
	onUnauthorized func()

	http      *http.Client
	metrics   *Metrics
	userAgent string
}

// Option configures optional behaviour of a Client
type Option func(client *Client)

// WithHTTPClient makes the client send its requests using httpClient
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.http = httpClient
	}
}

// WithTimeout limits the time a single request may take; zero disables the limit
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		copied := *client.http
		copied.Timeout = timeout
		client.http = &copied
	}
}

// WithMetrics makes the client record its requests in metrics
func WithMetrics(metrics *Metrics) Option {
	return func(client *Client) {
		client.metrics = metrics
	}
}

// WithUserAgent sets the User-Agent header of every request
func WithUserAgent(userAgent string) Option {
	return func(client *Client) {
		client.userAgent = userAgent
	}
}

// New creates a new API client.
// baseURL is the address of the API server without the /api prefix; it may be empty to use relative URLs.
// tokens is consulted before every request. onUnauthorized is called whenever the server answers with 401;
// it may be nil.
func New(baseURL string, tokens TokenFunc, onUnauthorized func(), opts ...Option) *Client {
	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		http:           &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the base URL the client was created with
func (client *Client) BaseURL() string {
	return client.baseURL
}

// request sends a single request and decodes the response body into result (if not nil).
// body is only sent for POST, PUT and PATCH requests. The status code of the response is returned as well.
func (client *Client) request(ctx context.Context, method, path string, body, result any) (int, error) {
	var reader io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, client.baseURL+apiPrefix+path, reader)
	if err != nil {
		return 0, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if client.userAgent != "" {
		req.Header.Set("User-Agent", client.userAgent)
	}
	if client.tokens != nil {
		if token := client.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	res, err := client.http.Do(req)
	if err != nil {
		client.metrics.observe(method, 0, time.Since(started))
		log.Debug().Err(err).Str("request_id", requestID).Str("method", method).Str("path", path).Msg("API request failed")
		return 0, err
	}
	defer res.Body.Close()
	client.metrics.observe(method, res.StatusCode, time.Since(started))
	log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("took", time.Since(started)).
		Msg("API request")

	if res.StatusCode == http.StatusUnauthorized {
		if client.onUnauthorized != nil {
			client.onUnauthorized()
		}
		return res.StatusCode, ErrUnauthorized
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return res.StatusCode, &RequestError{
			Status:  res.StatusCode,
			Message: readErrorMessage(res.Body),
		}
	}

	if res.StatusCode == http.StatusNoContent || result == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return res.StatusCode, nil
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil && !errors.Is(err, io.EOF) {
		return res.StatusCode, err
	}
	return res.StatusCode, nil
}

func readErrorMessage(body io.Reader) string {
	var response schema.ErrorResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil || response.Error == "" {
		return GenericErrorMessage
	}
	return response.Error
}

// call sends a request and returns its decoded result.
// The zero value of T is returned for 204 responses.
func call[T any](ctx context.Context, client *Client, method, path string, body any) (T, error) {
	var result T
	if _, err := client.request(ctx, method, path, body, &result); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// callRecord sends a request whose successful response has to carry a record.
// An empty or null body results in a RequestError carrying the generic message.
func callRecord[T any](ctx context.Context, client *Client, method, path string, body any) (*T, error) {
	var result *T
	status, err := client.request(ctx, method, path, body, &result)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &RequestError{
			Status:  status,
			Message: GenericErrorMessage,
		}
	}
	return result, nil
}
