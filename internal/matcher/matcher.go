// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// DefaultThreshold is the minimum similarity ratio Resolve accepts for
// a non-exact match. It is deliberately looser than the match engine's
// scalar scoring threshold; the two are tuned independently.
const DefaultThreshold = 0.6

// Ratio returns a normalized similarity between two strings in [0, 1]:
// twice the longest common subsequence length over the combined rune
// count. Identical strings (including two empty strings) score 1.0 and
// strings with no characters in common score 0.0. The comparison is
// case-sensitive; callers lowercase their inputs.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(edlib.LCS(a, b)) / float64(total)
}

// Resolve matches free-form input against a closed set of options and
// returns the canonical option text. The input is trimmed and
// lowercased; an option equal to it case-insensitively wins
// immediately. Otherwise the option with the highest similarity ratio
// wins if that ratio reaches threshold, ties going to the earliest
// option. The second return value reports whether a match was found.
func Resolve(input string, options []string, threshold float64) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(options) == 0 {
		return "", false
	}

	for _, option := range options {
		if strings.ToLower(option) == input {
			return option, true
		}
	}

	best := ""
	bestRatio := 0.0
	for _, option := range options {
		ratio := Ratio(input, strings.ToLower(option))
		if ratio > bestRatio {
			best = option
			bestRatio = ratio
		}
	}

	if bestRatio >= threshold {
		log.Debug().
			Str("input", input).
			Str("option", best).
			Float64("ratio", bestRatio).
			Msg("resolved input to option")
		return best, true
	}

	log.Debug().
		Str("input", input).
		Float64("bestRatio", bestRatio).
		Float64("threshold", threshold).
		Msg("no option above threshold")
	return "", false
}
