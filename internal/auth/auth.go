package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

// The terminal flow listens on its own loopback port so it still works
// while the API server holds 8080. Spotify requires the exact URI to be
// registered in the app settings, alongside the server's callback.
const (
	callbackAddr    = "127.0.0.1:8910"
	redirectURI     = "http://" + callbackAddr + "/callback"
	callbackTimeout = 2 * time.Minute
)

var (
	// ErrMissingCredentials is returned when SPOTIFY_ID or SPOTIFY_SECRET is not set.
	ErrMissingCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

	// ErrAuthTimeout is returned when the OAuth callback is not received in time.
	ErrAuthTimeout = errors.New("authentication timed out waiting for callback")

	// ErrStateMismatch is returned when the OAuth state parameter doesn't match.
	ErrStateMismatch = errors.New("OAuth state mismatch")
)

// Authenticator runs the Spotify OAuth flow for terminal sessions,
// reusing a cached token when one is still usable.
type Authenticator struct {
	auth  *spotifyauth.Authenticator
	cache *TokenCache
}

// New creates an Authenticator from the SPOTIFY_ID and SPOTIFY_SECRET
// environment variables.
func New() (*Authenticator, error) {
	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	cache, err := DefaultTokenCache()
	if err != nil {
		return nil, fmt.Errorf("creating token cache: %w", err)
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(clientID),
		spotifyauth.WithClientSecret(clientSecret),
		spotifyauth.WithRedirectURL(redirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPrivate,
			spotifyauth.ScopeUserReadEmail,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)

	return &Authenticator{auth: auth, cache: cache}, nil
}

// Authenticate returns an authenticated Spotify client, preferring the
// cached token and falling back to the interactive browser flow.
func (a *Authenticator) Authenticate(ctx context.Context) (*spotify.Client, error) {
	if client := a.cachedClient(ctx); client != nil {
		return client, nil
	}
	return a.interactiveFlow(ctx)
}

// cachedClient builds a client from the stored token and verifies it
// with a profile call. Returns nil when no usable token exists.
func (a *Authenticator) cachedClient(ctx context.Context) *spotify.Client {
	token, err := a.cache.Load()
	if err != nil {
		// An unreadable cache is not fatal; the interactive flow
		// will overwrite it.
		fmt.Printf("Warning: ignoring unreadable token cache: %v\n", err)
		return nil
	}
	if token == nil {
		return nil
	}

	client := spotify.New(a.auth.Client(ctx, token), spotify.WithRetry(true))
	if _, err := client.CurrentUser(ctx); err != nil {
		fmt.Println("Cached token invalid, starting new authentication...")
		return nil
	}

	// The oauth2 transport may have refreshed the token during the
	// probe; keep the cache current.
	if fresh, err := client.Token(); err == nil && fresh.AccessToken != token.AccessToken {
		if err := a.cache.Save(fresh); err != nil {
			fmt.Printf("Warning: failed to cache token: %v\n", err)
		}
	}

	return client
}

// interactiveFlow walks the user through browser authorization,
// capturing the redirect on a loopback listener.
func (a *Authenticator) interactiveFlow(ctx context.Context) (*spotify.Client, error) {
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}

	tokenCh := make(chan *oauth2.Token, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		token, err := a.completeAuth(w, r, state)
		if err != nil {
			errCh <- err
			return
		}
		tokenCh <- token
	})

	server := &http.Server{Addr: callbackAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("callback server error: %w", err)
		}
	}()

	fmt.Println("\nTo authenticate, open this URL in your browser:")
	fmt.Println(a.auth.AuthURL(state))
	fmt.Println("\nWaiting for authentication...")

	var token *oauth2.Token
	select {
	case token = <-tokenCh:
	case err := <-errCh:
		stopCallbackServer(server)
		return nil, err
	case <-time.After(callbackTimeout):
		stopCallbackServer(server)
		return nil, ErrAuthTimeout
	case <-ctx.Done():
		stopCallbackServer(server)
		return nil, ctx.Err()
	}
	stopCallbackServer(server)

	if err := a.cache.Save(token); err != nil {
		// Auth succeeded even if caching did not.
		fmt.Printf("Warning: failed to cache token: %v\n", err)
	}

	return spotify.New(a.auth.Client(ctx, token), spotify.WithRetry(true)), nil
}

// completeAuth validates the callback request and exchanges the
// authorization code for a token.
func (a *Authenticator) completeAuth(w http.ResponseWriter, r *http.Request, expectedState string) (*oauth2.Token, error) {
	if r.URL.Query().Get("state") != expectedState {
		http.Error(w, "State mismatch", http.StatusBadRequest)
		return nil, ErrStateMismatch
	}

	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		http.Error(w, "Authentication failed: "+errMsg, http.StatusBadRequest)
		return nil, fmt.Errorf("spotify auth error: %s", errMsg)
	}

	token, err := a.auth.Token(r.Context(), expectedState, r)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return nil, fmt.Errorf("exchanging code for token: %w", err)
	}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, "<!DOCTYPE html><html><body><h1>Authentication successful</h1><p>You can close this window and return to the terminal.</p></body></html>")

	return token, nil
}

func stopCallbackServer(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

// generateState creates a random state string for OAuth.
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
