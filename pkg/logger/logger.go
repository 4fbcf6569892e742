package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level is the minimum severity a logger prints
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the tag printed in log lines
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int32(l))
}

// ParseLevel converts a LOG_LEVEL value into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// minLevel is shared by every logger so LOG_LEVEL applies process-wide
var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level for all loggers
func SetLevel(level Level) {
	minLevel.Store(int32(level))
}

// Logger is a wrapper around the standard library logger
type Logger struct {
	*log.Logger
	channelID string
}

// New creates a new logger with the given channel ID.
// The channel ID is either a chat ID or a component name.
func New(channelID string) *Logger {
	return NewWithWriter(os.Stdout, channelID)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, channelID string) *Logger {
	return &Logger{
		Logger:    log.New(w, "", 0),
		channelID: channelID,
	}
}

// With returns a logger for another channel sharing the same output
func (l *Logger) With(channelID string) *Logger {
	return &Logger{
		Logger:    l.Logger,
		channelID: channelID,
	}
}

// formatMessage formats a log message with timestamp and channel ID
func (l *Logger) formatMessage(level Level, format string, v ...interface{}) string {
	timestamp := time.Now().Format(time.RFC3339)
	message := fmt.Sprintf(format, v...)

	if l.channelID != "" {
		return fmt.Sprintf("[%s] [%s] [Channel: %s] %s", timestamp, level, l.channelID, message)
	}

	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
}

func (l *Logger) print(level Level, format string, v ...interface{}) {
	if int32(level) < minLevel.Load() {
		return
	}
	l.Logger.Println(l.formatMessage(level, format, v...))
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.print(LevelInfo, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.print(LevelError, format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.print(LevelDebug, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.print(LevelWarn, format, v...)
}

// Global logger instance for application-wide logging
var Global = New("")

// SetGlobal sets the global logger
func SetGlobal(logger *Logger) {
	Global = logger
}
