// Package module provides config mapping for the fetcher module
package module

import (
	"time"

	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/config"
)

// Config carries the retriever tunables read from the environment
type Config struct {
	Timeout      time.Duration
	MaxLinked    int
	MaxBodyBytes int64
	UserAgent    string
	Hints        []string
}

// FromConfig reads FETCHER_* settings with sane defaults.
// Hints default to the embedded vocabulary's link hints when unset
func FromConfig(cfg config.Conf) Config {
	f := cfg.Prefix("FETCHER_")
	return Config{
		Timeout:      f.MayDuration("TIMEOUT", 15*time.Second),
		MaxLinked:    f.MayInt("MAX_LINKED", 6),
		MaxBodyBytes: int64(f.MayInt("MAX_BODY_BYTES", 2<<20)),
		UserAgent:    f.MayString("USER_AGENT", "rejection-analyzer/1.0"),
		Hints:        f.MayCSV("HINTS", nil),
	}
}
