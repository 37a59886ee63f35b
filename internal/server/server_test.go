package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/core"
	"github.com/jmgilman/go/fsutil/internal/logging"
)

func newTestServer(t *testing.T) (*Server, core.FS) {
	t.Helper()
	fsys := billy.NewMemory()
	logger := logging.NewWithOutput(&bytes.Buffer{}, &bytes.Buffer{}, false)
	srv := New(Config{Version: "test"}, fsys, logger)
	return srv, fsys
}

func doGet(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doGet(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz: status = %d, want %d", rec.Code, http.StatusOK)
	}

	var health map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if health["status"] != "healthy" {
		t.Errorf("health status = %v, want healthy", health["status"])
	}
}

func TestServer_Version(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doGet(t, srv, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /version: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"test"`) {
		t.Errorf("version body = %q, want it to contain %q", rec.Body.String(), "test")
	}
}

func TestServer_ServeFile(t *testing.T) {
	srv, fsys := newTestServer(t)
	if err := fsys.WriteFile("hello.txt", []byte("hello world"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rec := doGet(t, srv, "/files/hello.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /files/hello.txt: status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "hello world")
	}
	if got := rec.Header().Get("Content-Length"); got != "11" {
		t.Errorf("Content-Length = %q, want %q", got, "11")
	}
}

func TestServer_ServeDirListing(t *testing.T) {
	srv, fsys := newTestServer(t)
	if err := fsys.MkdirAll("dir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := fsys.WriteFile("dir/a.txt", []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rec := doGet(t, srv, "/files/dir")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /files/dir: status = %d, want %d", rec.Code, http.StatusOK)
	}

	var listing []entry
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("unmarshal listing: %v", err)
	}
	if len(listing) != 2 {
		t.Fatalf("listing has %d entries, want 2", len(listing))
	}

	byName := make(map[string]entry, len(listing))
	for _, e := range listing {
		byName[e.Name] = e
	}
	if e, ok := byName["a.txt"]; !ok || e.IsDir || e.Size != 3 {
		t.Errorf("a.txt entry = %+v, want file of size 3", e)
	}
	if e, ok := byName["sub"]; !ok || !e.IsDir {
		t.Errorf("sub entry = %+v, want directory", e)
	}
}

func TestServer_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doGet(t, srv, "/files/missing.txt")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /files/missing.txt: status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error response: %v", err)
	}
	if resp.Error != "not found" {
		t.Errorf("error = %q, want %q", resp.Error, "not found")
	}
}

// failingWriter rejects every body write, like a client that hung up.
type failingWriter struct {
	header http.Header
}

func (f *failingWriter) Header() http.Header {
	if f.header == nil {
		f.header = http.Header{}
	}
	return f.header
}

func (f *failingWriter) WriteHeader(int) {}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("client gone")
}

func TestServer_FailedWritesLogged(t *testing.T) {
	fsys := billy.NewMemory()
	var errOut bytes.Buffer
	logger := logging.NewWithOutput(&bytes.Buffer{}, &errOut, false)
	srv := New(Config{Version: "test"}, fsys, logger)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	srv.Handler().ServeHTTP(&failingWriter{}, req)
	if !strings.Contains(errOut.String(), "send metrics") {
		t.Errorf("metrics write failure not logged: %q", errOut.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/files/missing.txt", nil)
	srv.Handler().ServeHTTP(&failingWriter{}, req)
	if !strings.Contains(errOut.String(), "encode error response") {
		t.Errorf("error-response encode failure not logged: %q", errOut.String())
	}
}

func TestServer_Metrics(t *testing.T) {
	srv, fsys := newTestServer(t)
	if err := fsys.WriteFile("f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doGet(t, srv, "/files/f.txt")
	doGet(t, srv, "/files/missing.txt")

	rec := doGet(t, srv, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics: status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "fsutil_requests_total 2") {
		t.Errorf("metrics missing request count:\n%s", body)
	}
	if !strings.Contains(body, "fsutil_errors_total 1") {
		t.Errorf("metrics missing error count:\n%s", body)
	}
	if !strings.Contains(body, `fsutil_endpoint_requests_total{endpoint="/files/f.txt"} 1`) {
		t.Errorf("metrics missing endpoint count:\n%s", body)
	}
}
