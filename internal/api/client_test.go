package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/clipy/internal/jsonx"
)

type recorded struct {
	method      string
	path        string
	query       map[string]string
	requestID   string
	contentType string
	body        string
}

// fakeServer answers every request with the configured status and body and
// records what it received
type fakeServer struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	q := map[string]string{}
	for k := range r.URL.Query() {
		q[k] = r.URL.Query().Get(k)
	}

	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		method:      r.Method,
		path:        r.URL.Path,
		query:       q,
		requestID:   r.Header.Get(HeaderRequestID),
		contentType: r.Header.Get("Content-Type"),
		body:        string(body),
	})
	status, text := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

func (f *fakeServer) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, f *fakeServer) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://127.0.0.1:8080", false},
		{"https with trailing slash", "https://clipy.local/", false},
		{"missing scheme", "127.0.0.1:8080", true},
		{"ftp", "ftp://host", true},
		{"no host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_EndpointContracts(t *testing.T) {
	f := &fakeServer{body: `{}`}
	c := newTestClient(t, f)
	ctx := context.Background()

	_, err := c.Inquire(ctx, "https://youtu.be/abc?t=1&x=y")
	require.NoError(t, err)
	got := f.last()
	assert.Equal(t, PathInquire, got.path)
	assert.Equal(t, "https://youtu.be/abc?t=1&x=y", got.query[ParamVideo])
	assert.Equal(t, http.MethodGet, got.method)

	_, err = c.Download(ctx, "abc", 3)
	require.NoError(t, err)
	got = f.last()
	assert.Equal(t, PathDownload, got.path)
	assert.Equal(t, map[string]string{"vid": "abc", "stream": "3"}, got.query)

	_, err = c.Cancel(ctx, "abc|3")
	require.NoError(t, err)
	got = f.last()
	assert.Equal(t, PathCancel, got.path)
	assert.Equal(t, "abc|3", got.query[ParamSID])

	_, err = c.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, PathProgress, f.last().path)

	_, err = c.Shutdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, PathShutdown, f.last().path)
}

func TestClient_RequestIDs(t *testing.T) {
	f := &fakeServer{body: `{}`}
	c := newTestClient(t, f)

	_, err := c.Progress(context.Background())
	require.NoError(t, err)
	first := f.last().requestID

	_, err = c.Progress(context.Background())
	require.NoError(t, err)
	second := f.last().requestID

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestClient_DecodesBody(t *testing.T) {
	f := &fakeServer{body: `{"vid":"abc","title":"T","streams":[]}`}
	c := newTestClient(t, f)

	v, err := c.Inquire(context.Background(), "abc")
	require.NoError(t, err)

	obj, ok := v.(*jsonx.Object)
	require.True(t, ok)
	assert.Equal(t, "T", obj.Text("title"))
}

func TestClient_UnparseableBodyIsText(t *testing.T) {
	f := &fakeServer{body: "Internal\nhiccup"}
	c := newTestClient(t, f)

	v, err := c.Progress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Internalhiccup", v)
}

func TestClient_StatusError(t *testing.T) {
	f := &fakeServer{status: http.StatusBadGateway, body: "bad"}
	c := newTestClient(t, f)

	_, err := c.Progress(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, PathProgress, se.URL)
	assert.Equal(t, "GET /api/progress: unexpected status 502", se.Error())
}

func TestClient_StatusErrorKeepsMethod(t *testing.T) {
	f := &fakeServer{status: http.StatusInternalServerError}
	c := newTestClient(t, f)

	_, err := c.Post(context.Background(), "/api/echo", []byte(`{}`))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.MethodPost, se.Method)
	assert.Contains(t, err.Error(), "POST /api/echo")
}

func TestClient_ResponseLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"at limit", MaxResponseLength, false},
		{"over limit", MaxResponseLength + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := `{"vid":"abc","title":"T","description":"`
			suffix := `"}`
			body := prefix + strings.Repeat("x", tt.size-len(prefix)-len(suffix)) + suffix
			c := newTestClient(t, &fakeServer{body: body})

			v, err := c.Inquire(context.Background(), "abc")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrResponseTooLarge)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			obj, ok := v.(*jsonx.Object)
			require.True(t, ok)
			assert.Equal(t, "abc", obj.Text("vid"))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := NewClient(addr)
	require.NoError(t, err)

	_, err = c.Progress(context.Background())
	assert.Error(t, err)
}

func TestClient_Post(t *testing.T) {
	f := &fakeServer{body: `{"ok":true}`}
	c := newTestClient(t, f)

	text, err := c.Post(context.Background(), "/api/echo", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)

	got := f.last()
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, ContentTypeJSON, got.contentType)
	assert.Equal(t, `{"a":1}`, got.body)
}

func TestAppError(t *testing.T) {
	msg, ok := AppError(jsonx.Decode(`{"error":"video unavailable"}`))
	assert.True(t, ok)
	assert.Equal(t, "video unavailable", msg)

	_, ok = AppError(jsonx.Decode(`{"vid":"abc"}`))
	assert.False(t, ok)

	_, ok = AppError("error")
	assert.False(t, ok)
}

type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls++
	return c.next.RoundTrip(r)
}

func TestWithHTTPClient(t *testing.T) {
	srv := httptest.NewServer(&fakeServer{body: `{}`})
	t.Cleanup(srv.Close)

	transport := &countingTransport{next: http.DefaultTransport}
	c, err := NewClient(srv.URL, WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)

	_, err = c.Shutdown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transport.calls)
}
