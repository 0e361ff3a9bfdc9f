// Command playlist-mood-analyzer analyzes the emotional profile of
// Spotify playlists.
//
// With no flags it starts the web API server. With -playlist it runs a
// single analysis from the terminal and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/justestif/go-playlist-mood-analyzer/internal/analysis"
	"github.com/justestif/go-playlist-mood-analyzer/internal/auth"
	"github.com/justestif/go-playlist-mood-analyzer/internal/db"
	"github.com/justestif/go-playlist-mood-analyzer/internal/lyrics"
	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
	"github.com/justestif/go-playlist-mood-analyzer/internal/spotify"
	"github.com/justestif/go-playlist-mood-analyzer/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	playlistID := flag.String("playlist", "", "analyze a single playlist from the terminal and exit")
	useLyrics := flag.Bool("lyrics", false, "include lyric sentiment in the analysis")
	force := flag.Bool("force", false, "re-analyze even if a recent result exists")
	logout := flag.Bool("logout", false, "forget the cached Spotify login and exit")
	addr := flag.String("addr", web.DefaultAddr, "listen address for the web server")
	flag.Parse()

	if *logout {
		return runLogout()
	}

	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("please set SPOTIFY_ID and SPOTIFY_SECRET environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("please set DATABASE_URL environment variable")
	}

	ctx := context.Background()

	database, err := db.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	var opts []analysis.Option
	lyricsEnabled := false
	if cfg, err := lyrics.LoadConfig(); err == nil {
		fetcher := lyrics.NewCachedFetcher(database, lyrics.NewClient(cfg))
		opts = append(opts, analysis.WithLyricProvider(fetcher))
		lyricsEnabled = true
	} else {
		log.Printf("lyric enrichment disabled: %v", err)
	}

	svc := analysis.New(database, classifier, opts...)

	if *playlistID != "" {
		return runOnce(ctx, svc, *playlistID, *useLyrics, *force)
	}

	server := web.NewServer(web.ServerConfig{
		Addr:         *addr,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  os.Getenv("SPOTIFY_REDIRECT_URI"),
	}, database, svc, lyricsEnabled)

	return server.Run()
}

// newClassifier builds the mood engine, optionally with tuning weights
// loaded from MOOD_WEIGHTS_FILE.
func newClassifier() (*mood.Classifier, error) {
	opts := []mood.Option{mood.WithLyricScorer(lyrics.NewScorer())}

	if path := os.Getenv("MOOD_WEIGHTS_FILE"); path != "" {
		weights, err := mood.LoadWeights(path)
		if err != nil {
			return nil, fmt.Errorf("loading mood weights: %w", err)
		}
		opts = append(opts, mood.WithWeights(weights))
	}

	return mood.New(opts...), nil
}

// runOnce performs a single analysis from the terminal, authenticating
// through the cached-token OAuth flow.
func runOnce(ctx context.Context, svc *analysis.Service, playlistID string, useLyrics, force bool) error {
	authenticator, err := auth.New()
	if err != nil {
		return err
	}

	client, err := authenticator.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authenticating with Spotify: %w", err)
	}

	result, err := svc.Analyze(ctx, spotify.New(client), analysis.Request{
		PlaylistID: playlistID,
		UseLyrics:  useLyrics,
		Force:      force,
	})
	if err != nil {
		return fmt.Errorf("analyzing playlist: %w", err)
	}

	fmt.Print(analysis.FormatResult(result))
	return nil
}

// runLogout removes the OAuth token cached by terminal analyses.
func runLogout() error {
	cache, err := auth.DefaultTokenCache()
	if err != nil {
		return err
	}
	if err := cache.Delete(); err != nil {
		return fmt.Errorf("removing cached token: %w", err)
	}
	fmt.Println("Removed cached Spotify token.")
	return nil
}
