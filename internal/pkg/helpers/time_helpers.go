package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Seconds parses a duration string and returns it in whole seconds, or defaultDuration's seconds on error.
func Seconds(durationStr string, defaultDuration time.Duration) int {
	return int(ParseDuration(durationStr, defaultDuration) / time.Second)
}
