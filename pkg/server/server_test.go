package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/reactive"
	"github.com/aster-ui/aster/pkg/vdom"
)

type counterRoot struct {
	count *reactive.Signal[int]
}

func newCounterRoot() vdom.Component {
	return &counterRoot{count: reactive.NewSignal(0)}
}

func (r *counterRoot) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Button(
			vdom.OnClick(func() { r.count.Update(func(n int) int { return n + 1 }) }),
			vdom.Text("+"),
		),
		vdom.Span(vdom.Text(vdom.PropToString(r.count.Get()))),
	)
}

var sessionMeta = regexp.MustCompile(`<meta name="aster-session" content="([^"]+)"`)

func findTagRef(tree *vdom.VNode, tag string) string {
	var ref string
	var walk func(*vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if n.Tag == tag && ref == "" {
			ref = n.Ref
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
	return ref
}

func dialLive(t *testing.T, ts *httptest.Server, id string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live?session=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func getPage(t *testing.T, ts *httptest.Server) (string, string) {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	m := sessionMeta.FindSubmatch(body)
	if m == nil {
		t.Fatalf("no session meta in page:\n%s", body)
	}
	return string(body), string(m[1])
}

func TestPageHandlerCreatesSession(t *testing.T) {
	srv := New(&Config{Title: "demo"}, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body, id := getPage(t, ts)
	if !strings.Contains(body, "<title>demo</title>") {
		t.Errorf("missing title: %s", body)
	}
	if !strings.Contains(body, "<button") {
		t.Errorf("missing rendered root: %s", body)
	}
	if _, err := srv.Sessions().Get(id); err != nil {
		t.Errorf("session %q not registered: %v", id, err)
	}
}

func TestPageHandlerAtCapacity(t *testing.T) {
	srv := New(&Config{MaxSessions: 1}, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	getPage(t, ts)
	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv := New(nil, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestWebSocketRejectsUnknownSession(t *testing.T) {
	srv := New(nil, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live?session=nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("resp = %v", resp)
	}
}

func TestWebSocketEventRoundTrip(t *testing.T) {
	srv := New(nil, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, id := getPage(t, ts)
	sess, err := srv.Sessions().Get(id)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	buttonRef := findTagRef(sess.Tree(), "button")
	if buttonRef == "" {
		t.Fatal("no button ref")
	}

	conn := dialLive(t, ts, id)
	defer conn.Close()

	ev := &host.Event{Seq: 1, Type: host.EventClick, Ref: buttonRef}
	if err := conn.WriteMessage(websocket.BinaryMessage, host.EncodeEvent(ev)); err != nil {
		t.Fatalf("write: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	frame, err := host.DecodeFrame(msg)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	found := false
	for _, p := range frame.Patches {
		if p.Op == host.OpSetText && p.Value == "1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected set-text patch for count, got %+v", frame.Patches)
	}
}

func TestCloseRemovesSession(t *testing.T) {
	srv := New(nil, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, id := getPage(t, ts)
	conn := dialLive(t, ts, id)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := srv.Sessions().Get(id); err != nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("session still registered after close")
}

// Ping writes and event-frame writes share one connection; without
// serialization a ping coinciding with a frame write panics the process.
func TestConcurrentFrameAndPingWrites(t *testing.T) {
	srv := New(&Config{PingInterval: 200 * time.Microsecond}, newCounterRoot)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, id := getPage(t, ts)
	sess, err := srv.Sessions().Get(id)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ref := findTagRef(sess.Tree(), "button")

	conn := dialLive(t, ts, id)
	defer conn.Close()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	deadline := time.Now().Add(400 * time.Millisecond)
	for seq := uint64(1); time.Now().Before(deadline); seq++ {
		ev := &host.Event{Seq: seq, Type: host.EventClick, Ref: ref}
		if err := conn.WriteMessage(websocket.BinaryMessage, host.EncodeEvent(ev)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestSignalFlushReachesClient(t *testing.T) {
	var root *counterRoot
	srv := New(nil, func() vdom.Component {
		root = &counterRoot{count: reactive.NewSignal(0)}
		return root
	})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, id := getPage(t, ts)
	sess, err := srv.Sessions().Get(id)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	conn := dialLive(t, ts, id)
	defer conn.Close()

	// A signal mutated outside any client event must still reach the client.
	root.count.Subscribe(sess.Listener())
	root.count.Set(7)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	frame, err := host.DecodeFrame(msg)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	found := false
	for _, p := range frame.Patches {
		if p.Op == host.OpSetText && p.Value == "7" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected flushed set-text patch, got %+v", frame.Patches)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.fillDefaults()
	if cfg.Addr != ":8080" || cfg.ReadTimeout != 60*time.Second || cfg.Logger == nil {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}
