package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Logger writes command output and request logs to a writer.
type Logger struct {
	*log.Logger
}

// statusWriter captures the response status code for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Print logs a message.
func (l *Logger) Print(ctx context.Context, args ...any) {
	l.Logger.Print(args...)
}

// Printf logs a formatted message.
func (l *Logger) Printf(ctx context.Context, format string, args ...any) {
	l.Logger.Printf(format, args...)
}

// WrapFunc returns a handler which logs the method, path, status and
// elapsed time of each request.
func (l *Logger) WrapFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		now := time.Now()
		next(wrapped, r)
		l.Printf(r.Context(), "%s %s %d %v", r.Method, r.URL.Path, wrapped.status, time.Since(now).Truncate(time.Millisecond))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
