package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/config"
)

// fakeServer answers the clipy endpoints with canned bodies keyed by path
// and records the last query seen on each path
type fakeServer struct {
	*httptest.Server
	bodies map[string]string
	hits   atomic.Int32

	mu      sync.Mutex
	queries map[string]string
}

func newFakeServer(t *testing.T, bodies map[string]string) *fakeServer {
	t.Helper()
	fs := &fakeServer{bodies: bodies, queries: map[string]string{}}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		fs.mu.Lock()
		fs.queries[r.URL.Path] = r.URL.RawQuery
		fs.mu.Unlock()

		body, ok := fs.bodies[r.URL.Path+"?"+r.URL.Query().Get(api.ParamVideo)]
		if !ok {
			body, ok = fs.bodies[r.URL.Path]
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) query(path string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.queries[path]
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand("test")
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestInquireCommand(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathInquire + "?a": `{"vid":"a","title":"First","streams":[{"sid":"a|0","display":"720p"}]}`,
		api.PathInquire + "?b": `{"vid":"b","title":"Second"}`,
	})

	out, _, err := run(t, "inquire", "--server", srv.URL, "a", "b")
	require.NoError(t, err)

	assert.Contains(t, out, "First")
	assert.Contains(t, out, "Second")
	assert.Contains(t, out, "720p")
	assert.Less(t, bytes.Index([]byte(out), []byte("First")), bytes.Index([]byte(out), []byte("Second")))
}

func TestInquireCommand_Collapsed(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathInquire: `{"vid":"a","title":"First","streams":[{"sid":"a|0","display":"720p"}]}`,
	})

	out, _, err := run(t, "inquire", "--server", srv.URL, "--collapsed", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.NotContains(t, out, "720p")
}

func TestInquireCommand_ErrorReplyPrintsNothing(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathInquire: `{"error":"no such video"}`,
	})

	out, _, err := run(t, "inquire", "--server", srv.URL, "zzz")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInquireCommand_RequiresArgument(t *testing.T) {
	_, _, err := run(t, "inquire")
	assert.Error(t, err)
}

func TestProgressCommand(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathProgress: `{"actives":[{"sid":"a|0","vid":"a","name":"clip.mp4","bytesdone":512,"total":1024}]}`,
	})

	out, _, err := run(t, "progress", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "clip.mp4")
}

func TestProgressCommand_NoActives(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathProgress: `{"actives":[]}`,
	})

	out, _, err := run(t, "progress", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "no active downloads")
}

func TestProgressCommand_ServerNotAnswering(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathProgress: "Bad Gateway",
	})

	out, _, err := run(t, "progress", "--server", srv.URL)
	assert.Error(t, err)
	assert.Contains(t, out, srv.URL)
}

func TestDownloadCommand(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathDownload: `{"sid":"a|2","status":"started"}`,
	})

	out, _, err := run(t, "download", "--server", srv.URL, "a", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sid: a|2")
	assert.Contains(t, out, "status: started")
	assert.Contains(t, srv.query(api.PathDownload), "stream=2")
	assert.Contains(t, srv.query(api.PathDownload), "vid=a")
}

func TestDownloadCommand_InvalidIndex(t *testing.T) {
	srv := newFakeServer(t, map[string]string{})

	_, _, err := run(t, "download", "--server", srv.URL, "a", "two")
	assert.ErrorContains(t, err, "invalid stream index")
	assert.Zero(t, srv.hits.Load())
}

func TestCancelCommand_ErrorReply(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathCancel: `{"error":"unknown session"}`,
	})

	_, _, err := run(t, "cancel", "--server", srv.URL, "a|0")
	assert.EqualError(t, err, "unknown session")
}

func TestShutdownCommand(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathShutdown: `"bye"`,
	})

	out, _, err := run(t, "shutdown", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "bye")
}

func TestShutdownCommand_HTTPError(t *testing.T) {
	srv := newFakeServer(t, map[string]string{})

	_, _, err := run(t, "shutdown", "--server", srv.URL)
	var statusErr *api.StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestSetup_ConfigFile(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathShutdown: `"bye"`,
	})
	path := filepath.Join(t.TempDir(), "clipy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: "+srv.URL+"\nlog_level: debug\n"), 0o600))

	out, _, err := run(t, "shutdown", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bye")
}

func TestSetup_InvalidOptions(t *testing.T) {
	_, _, err := run(t, "shutdown", "--server", "ftp://example.com")
	assert.Error(t, err)
}

func TestOptionsFrom_Empty(t *testing.T) {
	opts := optionsFrom(context.Background())
	require.NotNil(t, opts)
	assert.Equal(t, config.DefaultServerURL, opts.Resolved().Server)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestExecute_ReturnsExitCode(t *testing.T) {
	srv := newFakeServer(t, map[string]string{
		api.PathShutdown: `{"error":"busy"}`,
	})

	assert.Equal(t, 1, Execute(context.Background(), "test", []string{"shutdown", "--server", srv.URL}))
}
