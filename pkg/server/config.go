package server

import (
	"log/slog"
	"net/http"
	"time"
)

// Config configures the server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Title is the rendered page title.
	Title string

	// ScriptPath is the client script URL injected into the page. Empty
	// serves static pages without a live channel.
	ScriptPath string

	// StaticDir serves files from this directory under StaticPrefix when
	// non-empty. This is where the client script usually lives.
	StaticDir string

	// StaticPrefix is the URL prefix for static files (default "/static/").
	StaticPrefix string

	// EnableMetrics exposes Prometheus metrics on /metrics.
	EnableMetrics bool

	// MaxSessions caps concurrent sessions. Zero means unlimited.
	MaxSessions int

	// ReadTimeout is the WebSocket read deadline (default 60s).
	ReadTimeout time.Duration

	// WriteTimeout is the WebSocket write deadline (default 10s).
	WriteTimeout time.Duration

	// PingInterval is the server ping cadence (default 30s). Must be below
	// ReadTimeout or the connection starves.
	PingInterval time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the WebSocket origin. Nil allows same-origin
	// only, gorilla's default.
	CheckOrigin func(r *http.Request) bool

	// Logger is the server logger (default slog.Default()).
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8080",
		Title:           "aster",
		ScriptPath:      "/client.js",
		StaticPrefix:    "/static/",
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
	}
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.StaticPrefix == "" {
		c.StaticPrefix = d.StaticPrefix
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = d.PingInterval
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
