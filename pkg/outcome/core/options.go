package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// Logger returns the logger carried by ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}
