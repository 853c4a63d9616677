// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production logger writing JSON to stderr at the given
// level. An unparseable level falls back to error.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	l := new(Logger)
	l.SugaredLogger = logger.Sugar()
	l.security = NewSecurityLogger(l.SugaredLogger)

	return l
}

// NewNoopLogger returns a logger that discards everything, for tests.
func NewNoopLogger() *Logger {
	l := new(Logger)
	l.SugaredLogger = zap.NewNop().Sugar()
	l.security = NewSecurityLogger(l.SugaredLogger)

	return l
}
