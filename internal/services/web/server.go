// Package web hosts the browser-facing HTTP server and its view layer.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// shutdownTimeout caps the graceful drain on context cancellation.
const shutdownTimeout = 5 * time.Second

// Config defines the inputs for the web server.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// AppName is the URL prefix and display name of the application.
	AppName string
	// Root is the application filesystem root holding modules/ and
	// static/.
	Root string
	// Theme names the active theme configuration.
	Theme string
	// MapKitTheme optionally names a map-kit theme stylesheet under
	// static/themes.
	MapKitTheme string
	// Debug serves individual unminified assets instead of the bundle.
	Debug bool
	// CDN loads third-party assets from their public CDNs.
	CDN bool
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.AppName) == "" {
		return nil, errors.New("app name is required")
	}
	if strings.TrimSpace(config.Root) == "" {
		return nil, errors.New("application root is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// build returns the asset build variant for the configuration.
func (c Config) build() pagestate.Build {
	if c.Debug {
		return pagestate.BuildDebug
	}
	return pagestate.BuildMinified
}

// source returns the asset source variant for the configuration.
func (c Config) source() pagestate.Source {
	if c.CDN {
		return pagestate.SourceCDN
	}
	return pagestate.SourceLocal
}
