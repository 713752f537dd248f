package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aster-ui/aster/pkg/middleware"
	"github.com/aster-ui/aster/pkg/render"
	"github.com/aster-ui/aster/pkg/session"
	"github.com/aster-ui/aster/pkg/vdom"
)

// RootFactory builds a fresh component tree for each new session.
type RootFactory func() vdom.Component

// Server is the HTTP/WebSocket front of a component application.
type Server struct {
	cfg      *Config
	log      *slog.Logger
	sessions *session.Manager
	newRoot  RootFactory
	handler  middleware.Handler
	metrics  *middleware.Metrics
	mws      []middleware.Middleware
	rend     *render.Renderer
	upgrader websocket.Upgrader

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithEventMiddleware adds middleware to the event pipeline, outermost
// first. The metrics middleware, when enabled, stays outermost overall.
func WithEventMiddleware(mws ...middleware.Middleware) Option {
	return func(s *Server) {
		s.mws = append(s.mws, mws...)
	}
}

// New creates a server that mounts a fresh root per session.
func New(cfg *Config, newRoot RootFactory, opts ...Option) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.fillDefaults()

	s := &Server{
		cfg:     cfg,
		log:     cfg.Logger,
		newRoot: newRoot,
		sessions: session.NewManager(
			session.WithMaxSessions(cfg.MaxSessions),
			session.WithManagerLogger(cfg.Logger),
		),
		rend: render.NewRenderer(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	var mws []middleware.Middleware
	if cfg.EnableMetrics {
		s.metrics = middleware.NewMetrics()
		mws = append(mws, s.metrics.Middleware())
	}
	mws = append(mws, s.mws...)
	s.handler = middleware.Chain(middleware.Dispatch(), mws...)

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.routes(),
	}
	return s
}

// Sessions exposes the session manager.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// Handler returns the HTTP handler, for embedding in a larger router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/live", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	if s.cfg.StaticDir != "" {
		r.Get(s.cfg.StaticPrefix+"*", s.handleStatic)
	}
	if s.cfg.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// handlePage renders the initial document and opens a session for it.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(s.newRoot())
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			http.Error(w, "server at capacity", http.StatusServiceUnavailable)
			return
		}
		s.log.Error("session create failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.SessionStarted()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = s.rend.RenderPage(w, render.PageData{
		Title:      s.cfg.Title,
		SessionID:  sess.ID(),
		Body:       sess.Tree(),
		ScriptPath: s.cfg.ScriptPath,
	})
	if err != nil {
		s.log.Error("page render failed", "session", sess.ID(), "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down")
	err := s.httpServer.Shutdown(shutdownCtx)
	s.sessions.Shutdown()
	return err
}
