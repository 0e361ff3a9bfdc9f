package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestTokenCache_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		token *oauth2.Token
	}{
		{
			name: "full token",
			token: &oauth2.Token{
				AccessToken:  "test-access-token",
				TokenType:    "Bearer",
				RefreshToken: "test-refresh-token",
				Expiry:       time.Now().Add(time.Hour),
			},
		},
		{
			name: "no refresh token",
			token: &oauth2.Token{
				AccessToken: "access-only",
				TokenType:   "Bearer",
				Expiry:      time.Now().Add(30 * time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A nested path checks that Save creates parents.
			path := filepath.Join(t.TempDir(), "nested", "token.json")
			cache := NewTokenCache(path)

			if cache.Path() != path {
				t.Fatalf("Path() = %q, want %q", cache.Path(), path)
			}

			if err := cache.Save(tt.token); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := cache.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded == nil {
				t.Fatal("Load() returned nil token")
			}

			if loaded.AccessToken != tt.token.AccessToken {
				t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, tt.token.AccessToken)
			}
			if loaded.RefreshToken != tt.token.RefreshToken {
				t.Errorf("RefreshToken = %q, want %q", loaded.RefreshToken, tt.token.RefreshToken)
			}
			if !loaded.Expiry.Equal(tt.token.Expiry) {
				t.Errorf("Expiry = %v, want %v", loaded.Expiry, tt.token.Expiry)
			}
		})
	}
}

func TestTokenCache_LoadMissing(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "token.json"))

	token, err := cache.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if token != nil {
		t.Errorf("Load() = %v, want nil for missing file", token)
	}
}

func TestTokenCache_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokenCache(path).Load(); err == nil {
		t.Error("Load() on corrupt file should return error")
	}
}

func TestTokenCache_SaveNilToken(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "token.json"))
	if err := cache.Save(nil); err == nil {
		t.Error("Save(nil) should return error")
	}
}

func TestTokenCache_SavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	cache := NewTokenCache(path)

	if err := cache.Save(&oauth2.Token{AccessToken: "secret", TokenType: "Bearer"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if mode := info.Mode().Perm(); mode&0077 != 0 {
		t.Errorf("file mode = %o, want no group/other access", mode)
	}
}

func TestTokenCache_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache := NewTokenCache(filepath.Join(dir, "token.json"))

	if err := cache.Save(&oauth2.Token{AccessToken: "a", TokenType: "Bearer"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := cache.Save(&oauth2.Token{AccessToken: "b", TokenType: "Bearer"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "token.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only token.json", names)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.AccessToken != "b" {
		t.Errorf("AccessToken after overwrite = %q, want %q", loaded.AccessToken, "b")
	}
}

func TestTokenCache_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	cache := NewTokenCache(path)

	if err := cache.Save(&oauth2.Token{AccessToken: "a", TokenType: "Bearer"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := cache.Delete(); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Delete() did not remove token file")
	}

	// Deleting a token that was never saved is not an error.
	if err := cache.Delete(); err != nil {
		t.Errorf("Delete() on missing file error = %v, want nil", err)
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	originalID := os.Getenv("SPOTIFY_ID")
	originalSecret := os.Getenv("SPOTIFY_SECRET")
	defer func() {
		os.Setenv("SPOTIFY_ID", originalID)
		os.Setenv("SPOTIFY_SECRET", originalSecret)
	}()

	tests := []struct {
		name   string
		id     string
		secret string
	}{
		{"both missing", "", ""},
		{"id missing", "", "secret"},
		{"secret missing", "id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("SPOTIFY_ID", tt.id)
			os.Setenv("SPOTIFY_SECRET", tt.secret)

			if _, err := New(); !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("New() error = %v, want ErrMissingCredentials", err)
			}
		})
	}
}

func TestNew_WithCredentials(t *testing.T) {
	originalID := os.Getenv("SPOTIFY_ID")
	originalSecret := os.Getenv("SPOTIFY_SECRET")
	defer func() {
		os.Setenv("SPOTIFY_ID", originalID)
		os.Setenv("SPOTIFY_SECRET", originalSecret)
	}()

	os.Setenv("SPOTIFY_ID", "test-client-id")
	os.Setenv("SPOTIFY_SECRET", "test-client-secret")

	auth, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if auth == nil {
		t.Error("New() returned nil authenticator")
	}
}

func TestGenerateState(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		state, err := generateState()
		if err != nil {
			t.Fatalf("generateState() error = %v", err)
		}
		if len(state) != 32 { // 16 bytes hex encoded
			t.Errorf("generateState() length = %d, want 32", len(state))
		}
		if seen[state] {
			t.Fatalf("generateState() repeated value %q", state)
		}
		seen[state] = true
	}
}
