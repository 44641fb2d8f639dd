package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is a custom logger type
type Logger struct {
	file   *os.File
	out    io.Writer
	logger *log.Logger
}

// NewLogger creates a new logger instance. An empty filePath logs to stdout.
func NewLogger(filePath string) (*Logger, error) {
	if filePath == "" {
		return &Logger{out: os.Stdout, logger: log.New(os.Stdout, "", log.LstdFlags)}, nil
	}
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{
		file:   file,
		out:    file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// Writer exposes the underlying sink, for access-log middleware.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.SetPrefix("INFO: ")
	l.logger.Printf(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger.SetPrefix("WARN: ")
	l.logger.Printf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.SetPrefix("ERROR: ")
	l.logger.Printf(format, args...)
}

// Close closes the log file
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
