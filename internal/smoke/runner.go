package smoke

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/sampleapp/pkg/logger"
)

// ErrChecksFailed is returned by Run when any check fails.
var ErrChecksFailed = errors.New("smoke checks failed")

// Run executes the functional checks, then the concurrent phase, then a
// final check that the user list did not drift. The report is returned
// even when checks fail; an invalid cfg yields no report.
func Run(ctx context.Context, cfg *Config, log logger.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{StartTime: time.Now()}
	c := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("requests", cfg.Requests),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
	)

	// Step 1: functional checks
	for _, ch := range checks {
		err := ch.run(ctx, c)
		report.Checks = append(report.Checks, CheckResult{Name: ch.name, Err: err})
		if err != nil {
			log.Warn(ctx, "check failed", logger.String("check", ch.name), logger.Error(err))
		} else {
			log.Debug(ctx, "check passed", logger.String("check", ch.name))
		}
	}

	// Step 2: concurrent phase bracketed by list snapshots
	before, err := listUsers(ctx, c)
	if err != nil {
		report.Checks = append(report.Checks, CheckResult{Name: "list_idempotent", Err: err})
	} else {
		runLoad(ctx, cfg, c, report)
		after, err := listUsers(ctx, c)
		if err == nil {
			err = compareLists(before, after)
		}
		report.Checks = append(report.Checks, CheckResult{Name: "list_idempotent", Err: err})
	}
	if report.RequestsFailed > 0 {
		report.Checks = append(report.Checks, CheckResult{
			Name: "load",
			Err:  fmt.Errorf("%d of %d requests failed", report.RequestsFailed, report.RequestsSent),
		})
	}

	report.Duration = time.Since(report.StartTime)
	log.Info(ctx, "smoke run finished",
		logger.Int("checks", len(report.Checks)),
		logger.Int("failed", len(report.Failed())),
		logger.Int("requestsSent", report.RequestsSent),
		logger.Duration("duration", report.Duration),
	)

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrChecksFailed, len(failed), len(report.Checks))
	}
	return report, nil
}
