package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestStaticRelPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/static/client.js", "client.js", true},
		{"/static/css/app.css", "css/app.css", true},
		{"/static/../secret", "", false},
		{"/static/a/../../secret", "", false},
		{"/static//etc/passwd", "", false},
		{"/static/a\\b", "", false},
		{"/static/a\x00b", "", false},
		{"/static/", "", false},
		{"/other/file.js", "", false},
	}
	for _, tt := range tests {
		got, ok := staticRelPath("/static/", tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("staticRelPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStaticServing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "client.js"), []byte("// client"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := New(&Config{StaticDir: dir}, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/static/client.js")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "// client" {
		t.Errorf("status = %d, body = %q", resp.StatusCode, body)
	}

	resp, err = ts.Client().Get(ts.URL + "/static/missing.js")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing file status = %d", resp.StatusCode)
	}
}
