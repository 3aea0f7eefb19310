// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the shipment tracker.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
// Request-scoped loggers carrying the trace id live in the request context
// and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout at debug level. It is used
// before the configuration is loaded.
func NewLogger(role string) *Logger {
	return newLogger(role, zerolog.DebugLevel, os.Stdout)
}

// NewLoggerWithConfig returns a logger at cfg.Level (debug when empty or
// unknown). When cfg.File is set entries also go to a lumberjack-rotated
// file.
func NewLoggerWithConfig(role string, cfg config.Log) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = zerolog.MultiLevelWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	return newLogger(role, level, out)
}

// newLogger sets the process-wide zerolog level and caller format, then
// builds a logger tagged with role.
func newLogger(role string, level zerolog.Level, out io.Writer) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be given extra fields without
// touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it returns
// zerolog's default context logger (disabled unless configured), never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
