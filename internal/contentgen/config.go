package contentgen

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxSuggestionTokens is the token budget for a name or word suggestion.
	MaxSuggestionTokens int

	// Temperature controls how adventurous suggestions are (0.0-1.0).
	Temperature float64

	// MaxAvoid is the maximum number of existing names listed in a
	// suggestion prompt.
	MaxAvoid int

	// Attempts bounds suggestion requests on the random paths. A duplicate
	// on the last attempt is reported as DuplicateItem.
	Attempts int

	// AspectRatio is requested for every picture.
	AspectRatio string

	// Timeout bounds a whole generation, suggestion and picture together.
	// Zero disables it.
	Timeout time.Duration
}

// DefaultConfig returns the recommended settings.
func DefaultConfig() Config {
	return Config{
		MaxSuggestionTokens: 512,
		Temperature:         1.0,
		MaxAvoid:            40,
		Attempts:            2,
		AspectRatio:         "1:1",
		Timeout:             2 * time.Minute,
	}
}
