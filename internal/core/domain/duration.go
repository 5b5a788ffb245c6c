package domain

import (
	"fmt"
	"time"

	"github.com/sosodev/duration"
)

// ParseISODuration converts an ISO-8601 designator string ("PT1H2M3S") into
// total whole seconds. Strings outside the grammar fail with ErrMalformedDuration.
func ParseISODuration(s string) (int64, error) {
	parsed, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	seconds := int64(parsed.ToTimeDuration() / time.Second)
	if seconds < 0 {
		return 0, fmt.Errorf("%w: negative duration %q", ErrMalformedDuration, s)
	}

	return seconds, nil
}
