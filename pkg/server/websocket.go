package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aster-ui/aster/pkg/host"
	"github.com/aster-ui/aster/pkg/session"
)

// connWriter serializes all writes to one connection. gorilla/websocket
// allows at most one concurrent writer, and pings and signal flushes run
// outside the read loop.
type connWriter struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	timeout time.Duration
}

func (w *connWriter) writeFrame(f *host.Frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	return w.conn.WriteMessage(websocket.BinaryMessage, host.EncodeFrame(f))
}

func (w *connWriter) writePing() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(w.timeout))
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

// handleWebSocket upgrades the live channel for an existing session. The
// session id arrives as the "session" query parameter, set by the client
// script from the page's meta tag.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	sess, err := s.sessions.Get(id)
	if err != nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.log.Warn("websocket upgrade failed", "session", id, "error", err)
		if s.metrics != nil {
			s.metrics.WebSocketError("upgrade")
		}
		return
	}

	s.log.Info("live channel open", "session", id)
	s.serveConn(r.Context(), conn, sess)
}

// serveConn runs the read loop for one connection. Events apply one at a
// time; each resulting frame is written back before the next read, so the
// client always observes patches in event order.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn, sess *session.Session) {
	defer func() {
		conn.Close()
		s.sessions.Remove(sess.ID())
		if s.metrics != nil {
			s.metrics.SessionEnded()
		}
	}()

	conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	})

	w := &connWriter{conn: conn, timeout: s.cfg.WriteTimeout}
	done := make(chan struct{})
	defer close(done)
	go s.pump(w, sess, done)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.log.Error("read error", "session", sess.ID(), "error", err)
				if s.metrics != nil {
					s.metrics.WebSocketError("read")
				}
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		ev, err := host.DecodeEvent(msg)
		if err != nil {
			s.log.Error("event decode error", "session", sess.ID(), "error", err)
			if s.metrics != nil {
				s.metrics.WebSocketError("decode")
			}
			continue
		}

		frame, err := s.handler(ctx, sess, ev)
		if err != nil {
			s.log.Error("event dispatch error", "session", sess.ID(), "error", err)
			continue
		}
		if frame == nil {
			continue
		}

		if err := w.writeFrame(frame); err != nil {
			s.log.Error("write error", "session", sess.ID(), "error", err)
			if s.metrics != nil {
				s.metrics.WebSocketError("write")
			}
			return
		}
	}
}

// pump delivers heartbeat pings and signal-driven flushes. A signal mutated
// outside an event marks the session dirty; the notify channel wakes the
// pump, which renders the pending changes and pushes the frame.
func (s *Server) pump(w *connWriter, sess *session.Session, done <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := w.writePing(); err != nil {
				return
			}
		case <-sess.Notify():
			frame := sess.Flush()
			if frame == nil {
				continue
			}
			if err := w.writeFrame(frame); err != nil {
				s.log.Error("flush write error", "session", sess.ID(), "error", err)
				if s.metrics != nil {
					s.metrics.WebSocketError("write")
				}
				return
			}
		case <-done:
			return
		}
	}
}
