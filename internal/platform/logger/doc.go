// Package logger provides structured logging for the application.
//
// It builds on the standard library log/slog package: Setup configures a JSON
// handler at the configured level, and the context helpers let request-scoped
// loggers (annotated with a trace ID) flow through handlers, services and stores.
package logger
