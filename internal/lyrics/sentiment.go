// Package lyrics fetches song lyrics from a provider and scores them
// for mood sentiment. Scoring is rule-based: a polarity lexicon with
// intensifier and negation handling produces a compound score, a
// curated keyword table maps vocabulary onto mood categories, and a
// few structural cues (repetition, punctuation) round out the vector.
package lyrics

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"

	"github.com/justestif/go-playlist-mood-analyzer/internal/mood"
)

const (
	// defaultMinWords is the eligibility floor: lyrics with fewer
	// content words after stop-word removal carry too little meaning
	// to score.
	defaultMinWords = 3

	// compoundAlpha dampens the compound normalization, keeping the
	// score length-independent. sum/sqrt(sum²+alpha) approaches ±1
	// only for strongly loaded text.
	compoundAlpha = 15.0

	// exclaimBoostStep grows the compound magnitude per exclamation
	// mark, capped at exclaimBoostCap marks.
	exclaimBoostStep = 0.05
	exclaimBoostCap  = 4
)

// sectionMarkers strips structural annotations like [Verse 2] or
// [Chorus] that lyric providers embed in the text.
var sectionMarkers = regexp.MustCompile(`\[[^\]]*\]`)

// Scorer computes mood affinity vectors from lyric text. It holds only
// static tables and the eligibility floor, so one instance serves
// concurrent analyses.
type Scorer struct {
	minWords int
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithMinWords overrides the content-word eligibility floor.
func WithMinWords(n int) ScorerOption {
	return func(s *Scorer) { s.minWords = n }
}

// NewScorer creates a Scorer with default settings.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{minWords: defaultMinWords}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ mood.LyricScorer = (*Scorer)(nil)

// Score turns lyric text into an unnormalized mood affinity vector.
// The second return value reports eligibility: text in a non-English
// language, or with too few content words, is ineligible and must not
// contribute to classification. The lexicon and keyword heuristics are
// English-specific, so skipping other languages beats misfiring on
// them.
func (s *Scorer) Score(text, language string) (mood.AffinityVector, bool) {
	if !englishEligible(language) {
		return mood.AffinityVector{}, false
	}

	cleaned := sectionMarkers.ReplaceAllString(text, "")
	if !s.longEnough(cleaned) {
		return mood.AffinityVector{}, false
	}

	lines := splitLines(cleaned)
	scores := make(map[mood.Category]float64)

	compound, hits, total := compoundScore(lines)
	compound = clampUnit(compound * exclaimBoost(text))
	applyCompound(scores, compound, hits, total)

	keywordScores(scores, lines)
	structuralCues(scores, lines, text)

	vec, err := mood.NewVector(scores)
	if err != nil {
		return mood.AffinityVector{}, false
	}
	return vec, true
}

// compoundScore sums per-word polarity contributions across all lines
// and squashes the total into [-1, 1]. Returns the compound score, the
// number of polarity-bearing tokens, and the total token count.
func compoundScore(lines []string) (float64, int, int) {
	var sum float64
	hits := 0
	total := 0

	for _, line := range lines {
		tokens := tokenize(line)
		total += len(tokens)

		for i, tok := range tokens {
			entry, ok := polarityLexicon[tok]
			if !ok {
				continue
			}
			hits++

			contribution := entry.polarity * entry.weight
			if i > 0 && intensifiers[tokens[i-1]] {
				contribution *= intensifierBoost
			}
			if negatedAt(tokens, i) {
				contribution = -contribution * negationDamp
			}
			sum += contribution
		}
	}

	return sum / math.Sqrt(sum*sum+compoundAlpha), hits, total
}

// applyCompound maps the compound polarity onto mood categories.
// Positive text feeds happy and upbeat, strongly positive adds
// energetic; negative text feeds sad and melancholic, strongly
// negative adds angry; neutral text with mostly non-polarity words
// reads as calm.
func applyCompound(scores map[mood.Category]float64, compound float64, hits, total int) {
	switch {
	case compound > 0.1:
		scores[mood.Happy] += compound * 0.8
		scores[mood.Upbeat] += compound * 0.6
		if compound > 0.5 {
			scores[mood.Energetic] += compound * 0.4
		}
	case compound < -0.1:
		mag := -compound
		scores[mood.Sad] += mag * 0.8
		scores[mood.Melancholic] += mag * 0.6
		if compound < -0.5 {
			scores[mood.Angry] += mag * 0.4
		}
	default:
		if total == 0 {
			return
		}
		neutral := 1 - float64(hits)/float64(total)
		if neutral > 0.5 {
			scores[mood.Calm] += neutral * 0.6
		}
	}
}

// keywordScores adds the curated keyword hits. An intensifier directly
// before a keyword boosts it; a negator within the window moves the
// hit to the keyword's opposite category at reduced weight, or drops
// it when no opposite is defined.
func keywordScores(scores map[mood.Category]float64, lines []string) {
	for _, line := range lines {
		tokens := tokenize(line)

		for i, tok := range tokens {
			category, ok := moodKeywords[tok]
			if !ok {
				continue
			}

			w := keywordWeight
			if i > 0 && intensifiers[tokens[i-1]] {
				w *= intensifierBoost
			}

			if negatedAt(tokens, i) {
				opposite, ok := moodOpposites[category]
				if !ok {
					continue
				}
				scores[opposite] += w * negationDamp
				continue
			}

			scores[category] += w
		}
	}
}

// structuralCues scores song-shape signals: a line repeated like a
// chorus hook reads upbeat, exclamation-heavy text reads energetic,
// and question-heavy text reads melancholic.
func structuralCues(scores map[mood.Category]float64, lines []string, raw string) {
	counts := make(map[string]int)
	maxRepeat := 0
	for _, line := range lines {
		key := strings.ToLower(strings.TrimSpace(line))
		if key == "" {
			continue
		}
		counts[key]++
		if counts[key] > maxRepeat {
			maxRepeat = counts[key]
		}
	}
	if maxRepeat > 2 {
		scores[mood.Upbeat] += 0.3
		scores[mood.Energetic] += 0.2
	}

	exclaims := strings.Count(raw, "!")
	questions := strings.Count(raw, "?")
	if exclaims > 2 {
		scores[mood.Energetic] += 0.2
		scores[mood.Happy] += 0.1
	}
	if questions > exclaims {
		scores[mood.Melancholic] += 0.1
	}
}

// negatedAt reports whether a negator appears within the negation
// window before token i. The window never crosses a line boundary
// since tokens are produced per line.
func negatedAt(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if negators[tokens[j]] {
			return true
		}
	}
	return false
}

// longEnough checks the content-word eligibility floor. Stop-word
// removal only gates eligibility here; scoring keeps the full token
// stream so negators and intensifiers stay visible.
func (s *Scorer) longEnough(text string) bool {
	cleaned := stopwords.CleanString(text, "en", false)
	return len(strings.Fields(cleaned)) >= s.minWords
}

// englishEligible accepts English language codes and unknown language.
func englishEligible(language string) bool {
	if language == "" {
		return true
	}
	lang := strings.ToLower(strings.TrimSpace(language))
	return lang == "en" || strings.HasPrefix(lang, "en-")
}

// exclaimBoost grows the compound magnitude slightly with exclamation
// density.
func exclaimBoost(raw string) float64 {
	count := strings.Count(raw, "!")
	if count > exclaimBoostCap {
		count = exclaimBoostCap
	}
	return 1 + float64(count)*exclaimBoostStep
}

// tokenize lowercases a line and splits it into word tokens, keeping
// apostrophes so contractions like "don't" survive as negators.
func tokenize(line string) []string {
	line = strings.ReplaceAll(line, "’", "'")
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
