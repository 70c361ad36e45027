package sheets

import "time"

// Defaults for the Sheets client. The throttle interval keeps dependent
// calls comfortably under Google's 60-requests-per-minute-per-user quota.
const (
	// DefaultThrottleInterval is the minimum spacing between API calls.
	DefaultThrottleInterval = time.Second

	// DefaultValueInputOption parses written values the way the Sheets UI
	// would (numbers, dates, formulas).
	DefaultValueInputOption = "USER_ENTERED"

	// DefaultBatchSize is the pending-range threshold at which the batch
	// coordinator flushes.
	DefaultBatchSize = 10
)

// Config holds Sheets client configuration.
type Config struct {
	// ThrottleInterval is the minimum spacing between API calls.
	// Zero disables throttling; negative values fall back to the default.
	ThrottleInterval time.Duration

	// ValueInputOption controls how written values are interpreted
	// ("USER_ENTERED" or "RAW"). Empty falls back to the default.
	ValueInputOption string
}

func (c Config) withDefaults() Config {
	if c.ThrottleInterval < 0 {
		c.ThrottleInterval = DefaultThrottleInterval
	}
	if c.ValueInputOption == "" {
		c.ValueInputOption = DefaultValueInputOption
	}
	return c
}
