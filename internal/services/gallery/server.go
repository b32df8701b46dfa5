// Package gallery hosts the browser-facing portfolio gallery service.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	domain "github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/platform/assets/imagecdn"
	"github.com/louisbranch/portfolio/internal/platform/httpx"
	"github.com/louisbranch/portfolio/internal/platform/i18n"
	"github.com/louisbranch/portfolio/internal/platform/observability"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	galleryapp "github.com/louisbranch/portfolio/internal/services/gallery/app"
	module "github.com/louisbranch/portfolio/internal/services/gallery/module"
	"github.com/louisbranch/portfolio/internal/services/gallery/modules"
	"github.com/louisbranch/portfolio/internal/services/gallery/routepath"
	gallerystatic "github.com/louisbranch/portfolio/internal/services/gallery/static"
)

// Config defines startup inputs for the gallery service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	Controller   *domain.Controller
	Locales      *i18n.Bundle
	Modules      []module.Module
}

// Server hosts the gallery HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the configured modules.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Controller == nil {
		return nil, errors.New("gallery controller is required")
	}
	locales := cfg.Locales
	if locales == nil {
		locales = i18n.Default()
	}
	mods := cfg.Modules
	if mods == nil {
		mods = modules.Default()
	}
	root, err := galleryapp.Compose(galleryapp.ComposeInput{
		Dependencies: module.Dependencies{
			Controller: cfg.Controller,
			Locales:    locales,
			Assets:     imagecdn.New(cfg.AssetBaseURL),
		},
		Modules: mods,
	})
	if err != nil {
		return nil, err
	}
	root.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(gallerystatic.FS))))
	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a gallery server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose gallery handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gallery http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
