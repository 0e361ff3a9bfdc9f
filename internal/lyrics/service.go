package lyrics

import (
	"context"
	"sync"
)

// Default concurrency for batch fetching.
const DefaultConcurrency = 5

// Track represents the minimal track info needed for a lyric lookup.
type Track struct {
	ID     string
	Title  string
	Artist string
}

// TrackLyrics holds the lyrics fetched for a track.
type TrackLyrics struct {
	TrackID string
	Lyric   Lyric
	Error   error // Non-nil if fetching failed
}

// LyricFetcher abstracts the lyric source for testing.
type LyricFetcher interface {
	GetLyrics(ctx context.Context, artist, title string) (Lyric, error)
}

// Service fetches lyrics for batches of tracks concurrently.
type Service struct {
	fetcher     LyricFetcher
	concurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency sets the number of concurrent fetch operations.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewService creates a new lyric service.
func NewService(fetcher LyricFetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:     fetcher,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchForTracks fetches lyrics for multiple tracks concurrently.
// Results are returned in the same order as input tracks.
// Individual fetch errors are captured in TrackLyrics.Error rather
// than failing the batch.
func (s *Service) FetchForTracks(ctx context.Context, tracks []Track) ([]TrackLyrics, error) {
	if len(tracks) == 0 {
		return []TrackLyrics{}, nil
	}

	results := make([]TrackLyrics, len(tracks))

	type workItem struct {
		index int
		track Track
	}
	workCh := make(chan workItem, len(tracks))

	for i, t := range tracks {
		workCh <- workItem{index: i, track: t}
	}
	close(workCh)

	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for work := range workCh {
				select {
				case <-ctx.Done():
					results[work.index] = TrackLyrics{
						TrackID: work.track.ID,
						Error:   ctx.Err(),
					}
					continue
				default:
				}

				lyric, err := s.fetcher.GetLyrics(ctx, work.track.Artist, work.track.Title)
				results[work.index] = TrackLyrics{
					TrackID: work.track.ID,
					Lyric:   lyric,
					Error:   err,
				}
			}
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return results, ctx.Err()
	}

	return results, nil
}
