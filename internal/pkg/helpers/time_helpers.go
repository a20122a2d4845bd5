package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DisplayDateLayout is the dd.mm.yyyy format the admin panel renders dates in.
const DisplayDateLayout = "02.01.2006"

// ISODateLayout is the yyyy-mm-dd format used in request parameters.
const ISODateLayout = "2006-01-02"

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatDisplayDate renders a date as dd.mm.yyyy.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
