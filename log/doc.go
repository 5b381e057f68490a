// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable levels, output formats, time formatting,
// and caller information, applied with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//	logger.Info("application started", slog.String("version", "1.0.0"))
//
// A package-level default logger writes to standard error and is
// reconfigured by the CLI's --log-* flags via [Config]. Context-unaware
// functions call their context-aware counterparts with
// [DefaultContextProvider].
//
// Two output formats are supported: [FormatText] (default) and [FormatJSON].
// When pretty printing is enabled, text output is colorized with ANSI escape
// sequences.
package log
