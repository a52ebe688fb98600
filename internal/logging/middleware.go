package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// Middleware attaches a fresh LogData to every request and emits one
// structured completion line carrying the accumulated fields and timings.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.Log().
			WithField("method", ctx.Method()).
			WithField("path", ctx.URL().Path).
			WithField("status", ctx.Status()).
			Info("Handler.Complete")
	}
}
