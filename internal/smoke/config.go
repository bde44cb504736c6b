// Package smoke verifies a running instance of the service over HTTP.
package smoke

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a smoke configuration cannot be run.
var ErrInvalidConfig = errors.New("invalid smoke config")

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Requests int           // Number of requests in the concurrent phase
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
}

// Validate rejects configurations that cannot drive the concurrent phase.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Requests < 0 {
		return fmt.Errorf("%w: requests must not be negative, got %d", ErrInvalidConfig, c.Requests)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// CheckResult is the outcome of one functional check.
type CheckResult struct {
	Name string
	Err  error
}

// Passed reports whether the check succeeded.
func (c CheckResult) Passed() bool { return c.Err == nil }

// Report holds the results of a smoke run.
type Report struct {
	Checks []CheckResult

	RequestsSent      int
	RequestsSucceeded int
	RequestsFailed    int

	StartTime time.Time
	Duration  time.Duration
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed() {
			out = append(out, c)
		}
	}
	return out
}
