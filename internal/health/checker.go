package health

import (
	"context"
	"log/slog"
	"time"

	"employee-service/internal/metrics"
)

// Checker pings every dependency on an interval and records the result in
// the dependency-up gauge.
type Checker struct {
	deps     map[string]Pinger
	interval time.Duration
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewChecker(deps map[string]Pinger, interval time.Duration, m *metrics.Metrics, logger *slog.Logger) *Checker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Checker{
		deps:     deps,
		interval: interval,
		timeout:  2 * time.Second,
		metrics:  m,
		logger:   logger,
	}
}

// Names lists the checked dependencies.
func (c *Checker) Names() []string {
	names := make([]string, 0, len(c.deps))
	for name := range c.deps {
		names = append(names, name)
	}
	return names
}

// Run checks once immediately, then on every tick until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	c.CheckOnce(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.CheckOnce(ctx)
		}
	}
}

func (c *Checker) CheckOnce(ctx context.Context) {
	for name, dep := range c.deps {
		pingCtx, cancel := context.WithTimeout(ctx, c.timeout)
		start := time.Now()
		err := dep.PingContext(pingCtx)
		cancel()

		c.metrics.Health.RecordDependencyCheck(ctx, name, time.Since(start), err)
		if err != nil {
			c.logger.WarnContext(ctx, "dependency check failed", "dependency", name, "error", err)
		}
	}
}
