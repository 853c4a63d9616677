// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"net/http"
	"time"

	middleware "github.com/go-chi/chi/v5/middleware"
)

// LogFormatter adapts the logger to chi's request logging middleware.
// Entries are emitted at debug level only.
type LogFormatter struct {
	logger LoggerInterface
}

func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	f := new(LogFormatter)
	f.logger = logger

	return f
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{logger: f.logger, method: r.Method, path: r.URL.Path}
}

type logEntry struct {
	logger LoggerInterface
	method string
	path   string
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Debugf("%s %s -> %d (%d bytes, %s)", e.method, e.path, status, bytes, elapsed)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Errorf("panic serving %s %s: %v\n%s", e.method, e.path, v, stack)
}
