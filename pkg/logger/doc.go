// Package logger builds configured log/slog loggers and provides shared
// attribute helpers so log keys stay consistent across the SDK.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("component", "apiclient")),
//	)
package logger
