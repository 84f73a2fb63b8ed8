package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a non-negative time span in the config file. It accepts Go
// duration strings ("1s", "150ms") and bare integers, which count
// milliseconds the way transition classes do (duration = 1000).
type Duration struct {
	time.Duration
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		return d.setMillis(v, strconv.FormatInt(v, 10))
	case string:
		return d.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("duration must be a string or milliseconds, got %T", v)
	}
}

// UnmarshalText parses a duration string. An all-digit string is read as
// milliseconds; the empty string is zero.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return d.setMillis(ms, s)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

func (d *Duration) setMillis(ms int64, raw string) error {
	if ms < 0 {
		return fmt.Errorf("negative duration %q not allowed", raw)
	}
	d.Duration = time.Duration(ms) * time.Millisecond
	return nil
}

// MarshalText writes the Go duration form, e.g. "1s".
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
