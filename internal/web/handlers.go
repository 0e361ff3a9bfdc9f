package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/justestif/go-playlist-mood-analyzer/internal/analysis"
	"github.com/justestif/go-playlist-mood-analyzer/internal/db"
	"github.com/justestif/go-playlist-mood-analyzer/internal/spotify"
)

const (
	stateCookieName = "oauth_state"

	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

type contextKey string

const sessionContextKey contextKey = "session"

func withSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func sessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey).(*Session)
	return s
}

// Handlers holds the dependencies for HTTP handlers.
type Handlers struct {
	auth     *spotifyauth.Authenticator
	sessions SessionManager
	database *db.DB
	analyzer *analysis.Service
	lyricsOn bool
}

// NewHandlers creates the HTTP handler set.
func NewHandlers(auth *spotifyauth.Authenticator, sessions SessionManager, database *db.DB, analyzer *analysis.Service, lyricsEnabled bool) *Handlers {
	return &Handlers{
		auth:     auth,
		sessions: sessions,
		database: database,
		analyzer: analyzer,
		lyricsOn: lyricsEnabled,
	}
}

// requireSession wraps a handler so it only runs with a valid session.
func (h *Handlers) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := h.sessions.GetFromRequest(r)
		if session == nil {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r.WithContext(withSession(r.Context(), session)))
	}
}

// Index describes the service.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, indexResponse{
		Service: "playlist-mood-analyzer",
		Endpoints: []string{
			"GET /auth/login",
			"POST /auth/logout",
			"POST /api/playlists/{playlistID}/analyze",
			"GET /api/playlists/{playlistID}/analysis",
			"GET /api/playlists/{playlistID}/analysis/history",
			"GET /api/stats",
			"GET /health",
			"GET /health/detailed",
		},
	})
}

// Login initiates the Spotify OAuth flow.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		log.Printf("generating OAuth state: %v", err)
		respondError(w, http.StatusInternalServerError, "starting login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusTemporaryRedirect)
}

// Callback completes the OAuth flow: verifies state, exchanges the
// authorization code, records the user, and opens a session.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing OAuth state cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if r.URL.Query().Get("state") != stateCookie.Value {
		respondError(w, http.StatusBadRequest, "OAuth state mismatch")
		return
	}

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		respondError(w, http.StatusBadRequest, "authorization denied: "+errMsg)
		return
	}

	ctx := r.Context()
	token, err := h.auth.Token(ctx, stateCookie.Value, r)
	if err != nil {
		log.Printf("exchanging authorization code: %v", err)
		respondError(w, http.StatusBadRequest, "completing authentication")
		return
	}

	client := spotify.New(spotifyapi.New(h.auth.Client(ctx, token)))
	profile, err := client.CurrentUser(ctx)
	if err != nil {
		log.Printf("fetching user profile: %v", err)
		respondError(w, http.StatusBadGateway, "fetching user profile")
		return
	}

	if err := h.database.Users().Upsert(ctx, &db.User{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}); err != nil {
		log.Printf("recording user %s: %v", profile.ID, err)
		respondError(w, http.StatusInternalServerError, "recording user")
		return
	}

	session, err := h.sessions.Create(ctx, token, profile.ID, profile.DisplayName)
	if err != nil {
		log.Printf("creating session: %v", err)
		respondError(w, http.StatusInternalServerError, "creating session")
		return
	}

	h.sessions.SetCookie(w, session)
	respond(w, http.StatusOK, loginResponse{
		UserID:      profile.ID,
		DisplayName: profile.DisplayName,
	})
}

// Logout ends the current session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.GetFromRequest(r); session != nil {
		h.sessions.Delete(r.Context(), session.ID)
	}
	h.sessions.ClearCookie(w)
	respond(w, http.StatusOK, statusResponse{Status: "logged out"})
}

// Analyze runs a mood analysis for a playlist.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(ctx)
	playlistID := chi.URLParam(r, "playlistID")

	client := spotifyapi.New(h.auth.Client(ctx, session.Token), spotifyapi.WithRetry(true))

	result, err := h.analyzer.Analyze(ctx, spotify.New(client), analysis.Request{
		PlaylistID: playlistID,
		UseLyrics:  boolParam(r, "use_lyrics"),
		Force:      boolParam(r, "force"),
		UserID:     session.UserID,
	})
	if err != nil {
		var apiErr spotifyapi.Error
		switch {
		case errors.Is(err, analysis.ErrAnalysisTooRecent):
			respondError(w, http.StatusTooManyRequests, err.Error())
		case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
			respondError(w, http.StatusNotFound, "playlist not found")
		case errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden:
			respondError(w, http.StatusForbidden, "playlist not accessible")
		default:
			log.Printf("analyzing playlist %s: %v", playlistID, err)
			respondError(w, http.StatusBadGateway, "analysis failed")
		}
		return
	}

	// Persist the refreshed token so later requests skip the refresh.
	if tok, err := client.Token(); err == nil && tok.AccessToken != session.Token.AccessToken {
		h.sessions.UpdateToken(ctx, session.ID, tok)
	}

	respond(w, http.StatusOK, newAnalysisResponse(result))
}

// LatestAnalysis returns the most recent stored analysis for a playlist.
func (h *Handlers) LatestAnalysis(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "playlistID")

	result, err := h.analyzer.Latest(r.Context(), playlistID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no analysis found for playlist")
			return
		}
		log.Printf("loading analysis for %s: %v", playlistID, err)
		respondError(w, http.StatusInternalServerError, "loading analysis")
		return
	}

	respond(w, http.StatusOK, newAnalysisResponse(result))
}

// AnalysisHistory lists stored analyses for a playlist, newest first.
func (h *Handlers) AnalysisHistory(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "playlistID")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	entries, err := h.analyzer.History(r.Context(), playlistID, limit)
	if err != nil {
		log.Printf("loading history for %s: %v", playlistID, err)
		respondError(w, http.StatusInternalServerError, "loading history")
		return
	}

	respond(w, http.StatusOK, newHistoryResponse(playlistID, entries))
}

// Stats returns aggregate statistics over stored analyses.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyzer.GetStats(r.Context())
	if err != nil {
		log.Printf("loading stats: %v", err)
		respondError(w, http.StatusInternalServerError, "loading stats")
		return
	}
	respond(w, http.StatusOK, newStatsResponse(stats))
}

// Health reports basic liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, statusResponse{Status: "ok"})
}

// HealthDetailed reports the health of the server and its dependencies.
func (h *Handlers) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:        "ok",
		Database:      "ok",
		LyricsEnabled: h.lyricsOn,
		Time:          time.Now().UTC(),
	}

	if err := h.database.Ping(ctx); err != nil {
		log.Printf("database ping: %v", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	respond(w, status, resp)
}

// boolParam reads a boolean query parameter, treating absence and
// unparseable values as false.
func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

// generateState creates a random state string for OAuth.
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
