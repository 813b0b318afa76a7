package graceful

import (
	"context"
	"time"

	"golang.org/x/exp/slices"
)

// ProcessStopper releases a resource acquired during setup. Stoppers run in
// reverse registration order, each with its own timeout.
type ProcessStopper func(ctx context.Context) error

func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	slices.Reverse(ps)

	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			_ = p(ctx)
		}()
	}
}
