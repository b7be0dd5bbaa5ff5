package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a LogData to every API request and emits a single
// structured completion line per operation.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		endTimer := logData.AddTiming("duration")

		next(huma.WithValue(ctx, logDataKey{}, logData))

		endTimer()
		logData.Log().
			WithField("method", ctx.Method()).
			WithField("path", ctx.URL().Path).
			WithField("status", ctx.Status()).
			Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
