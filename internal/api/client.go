package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/clipy/internal/jsonx"
	"github.com/ytget/clipy/internal/model"
)

// Endpoint paths
const (
	PathInquire  = "/api/inquire"
	PathProgress = "/api/progress"
	PathDownload = "/api/download"
	PathCancel   = "/api/cancel"
	PathShutdown = "/api/shutdown"
)

// Query parameters
const (
	ParamVideo  = "video"
	ParamVID    = "vid"
	ParamStream = "stream"
	ParamSID    = "sid"
)

// Request defaults
const (
	DefaultTimeout    = 30 * time.Second
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
	MaxResponseLength = 8 << 20
)

// StatusError is returned for any response outside the 2xx range
type StatusError struct {
	Method string
	Code   int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Code)
}

// ErrResponseTooLarge is returned when a body exceeds MaxResponseLength
var ErrResponseTooLarge = errors.New("response too large")

// Client issues requests against a clipy server
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.WithPrefix("api")
		}
	}
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server URL must start with http:// or https://: %q", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server URL has no host: %q", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  log.Default().WithPrefix("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server address
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint resolves path and query against the base URL
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

// Get fetches path and returns the body text
func (c *Client) Get(ctx context.Context, path string, query url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

// Post sends body as JSON to path and returns the response text
func (c *Client) Post(ctx context.Context, path string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", ContentTypeJSON)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	id := uuid.NewString()
	req.Header.Set(HeaderRequestID, id)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "id", id, "method", req.Method, "url", req.URL.String(), "error", err)
		return "", fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseLength+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", req.URL.Path, err)
	}
	if len(body) > MaxResponseLength {
		c.logger.Warn("response dropped", "id", id, "url", req.URL.String(), "limit", MaxResponseLength)
		return "", fmt.Errorf("%s %s: %w: exceeds %d bytes", req.Method, req.URL.Path, ErrResponseTooLarge, MaxResponseLength)
	}

	c.logger.Debug("request done",
		"id", id,
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(body),
		"took", time.Since(started).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Method: req.Method, Code: resp.StatusCode, URL: req.URL.Path}
	}
	return string(body), nil
}

// getDecoded fetches path and runs the body through the JSON decoder
func (c *Client) getDecoded(ctx context.Context, path string, query url.Values) (any, error) {
	text, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return jsonx.Decode(text), nil
}

// Inquire asks the server for metadata and streams of a video
func (c *Client) Inquire(ctx context.Context, video string) (any, error) {
	return c.getDecoded(ctx, PathInquire, url.Values{ParamVideo: {video}})
}

// Progress returns the list of active downloads
func (c *Client) Progress(ctx context.Context) (any, error) {
	return c.getDecoded(ctx, PathProgress, nil)
}

// Download queues stream index of video vid
func (c *Client) Download(ctx context.Context, vid string, index int) (any, error) {
	return c.getDecoded(ctx, PathDownload, url.Values{
		ParamVID:    {vid},
		ParamStream: {strconv.Itoa(index)},
	})
}

// Cancel stops the download with session id sid
func (c *Client) Cancel(ctx context.Context, sid string) (any, error) {
	return c.getDecoded(ctx, PathCancel, url.Values{ParamSID: {sid}})
}

// Shutdown stops the server
func (c *Client) Shutdown(ctx context.Context) (any, error) {
	return c.getDecoded(ctx, PathShutdown, nil)
}

// AppError reports whether v is an object carrying an error key and returns
// its text
func AppError(v any) (string, bool) {
	obj, ok := v.(*jsonx.Object)
	if !ok || !obj.Has(model.KeyError) {
		return "", false
	}
	return obj.Text(model.KeyError), true
}
