package core

import (
	"context"
	"time"
)

// Delay blocks for d or until ctx is done, whichever comes first.
func Delay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
