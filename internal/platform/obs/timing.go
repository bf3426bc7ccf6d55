package obs

import (
	"context"
	"harvest-planner/internal/platform/logger"
	"time"
)

// Time logs how long the named operation took. Use as
// defer obs.Time(ctx, "op")(&err) so failures are logged with the error.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warnw(ctx, "op failed", "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		logger.Infow(ctx, "op done", "op", name, "dur_ms", dur.Milliseconds())
	}
}
