package log

import (
	"context"
)

// LogRun writes the single per-run outcome line operators alert on.
func LogRun(ctx context.Context, runID, runDate string, err error) {
	field := []Field{
		String("run-id", runID),
		String("run-date", runDate),
	}
	if err != nil {
		field = append(field, String("status", "fail"), Err(err))
		Warn(ctx, "[RUN]", field...)
	} else {
		field = append(field, String("status", "success"))
		Info(ctx, "[RUN]", field...)
	}
}
