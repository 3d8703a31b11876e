package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level is the minimum severity that gets written
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a leveled printf-style logger writing to a log file and stdout
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a logger writing to the given file path (and stdout).
// Level is one of "debug", "info", "warn", "error".
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	var file *os.File
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		writers = append(writers, file)
	}

	return &Logger{
		level: lvl,
		out:   log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		file:  file,
	}, nil
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", level)
	}
}

// Close releases the underlying log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) write(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

// Debug logs at debug level
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "[DEBUG]", format, v...)
}

// Info logs at info level
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "[INFO]", format, v...)
}

// Warn logs at warn level
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "[WARN]", format, v...)
}

// Error logs at error level
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "[ERROR]", format, v...)
}

// Fatal logs at error level and terminates the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "[FATAL]", format, v...)
	if l.file != nil {
		_ = l.file.Close()
	}
	os.Exit(1)
}
