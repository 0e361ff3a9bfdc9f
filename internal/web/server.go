// Package web provides the HTTP API for playlist mood analysis,
// including the Spotify OAuth flow and session management.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/justestif/go-playlist-mood-analyzer/internal/analysis"
	"github.com/justestif/go-playlist-mood-analyzer/internal/db"
	"github.com/justestif/go-playlist-mood-analyzer/internal/lyrics"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultRedirectURI must match a redirect URI registered in the
	// Spotify developer dashboard.
	DefaultRedirectURI = "http://127.0.0.1:8080/callback"

	cleanupInterval = 1 * time.Hour
)

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	Addr         string // defaults to DefaultAddr
	ClientID     string
	ClientSecret string
	RedirectURI  string // defaults to DefaultRedirectURI
}

// Server is the HTTP server for the mood analysis API.
type Server struct {
	router   chi.Router
	server   *http.Server
	database *db.DB
	handlers *Handlers
}

// NewServer creates a configured web server. Sessions are persisted in
// the database so logins survive restarts.
func NewServer(cfg ServerConfig, database *db.DB, analyzer *analysis.Service, lyricsEnabled bool) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.RedirectURI == "" {
		cfg.RedirectURI = DefaultRedirectURI
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	sessions := NewDBSessionStore(database)
	handlers := NewHandlers(auth, sessions, database, analyzer, lyricsEnabled)

	router := chi.NewRouter()
	s := &Server{
		router:   router,
		database: database,
		handlers: handlers,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handlers.Index)
	s.router.Get("/health", s.handlers.Health)
	s.router.Get("/health/detailed", s.handlers.HealthDetailed)

	s.router.Get("/auth/login", s.handlers.Login)
	s.router.Get("/callback", s.handlers.Callback)
	s.router.Post("/auth/logout", s.handlers.Logout)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/playlists/{playlistID}/analyze", s.handlers.requireSession(s.handlers.Analyze))
		r.Get("/playlists/{playlistID}/analysis", s.handlers.requireSession(s.handlers.LatestAnalysis))
		r.Get("/playlists/{playlistID}/analysis/history", s.handlers.requireSession(s.handlers.AnalysisHistory))
		r.Get("/stats", s.handlers.requireSession(s.handlers.Stats))
	})
}

// Start begins listening. Blocks until the server stops.
func (s *Server) Start() error {
	log.Printf("listening on http://%s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and blocks until interrupted, then shuts down
// gracefully.
func (s *Server) Run() error {
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go s.cleanupLoop(cleanupCtx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	stopCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}

// cleanupLoop periodically removes expired sessions and stale cached
// lyrics.
func (s *Server) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.database.Sessions().DeleteExpired(ctx); err != nil {
				log.Printf("cleaning up sessions: %v", err)
			} else if n > 0 {
				log.Printf("removed %d expired session(s)", n)
			}

			cutoff := time.Now().Add(-2 * lyrics.CacheTTL)
			if n, err := s.database.Lyrics().DeleteStale(ctx, cutoff); err != nil {
				log.Printf("cleaning up lyrics cache: %v", err)
			} else if n > 0 {
				log.Printf("removed %d stale cached lyric(s)", n)
			}
		}
	}
}
