package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger is the global logger instance. It stays nil until Init runs, and
	// the package helpers are no-ops while it is.
	Logger *log.Logger
)

// Config holds logger configuration.
type Config struct {
	Verbose bool
	Dir     string
}

// Init installs the global logger. Records go to a rotating file under
// <Dir>/logs; verbose mode mirrors them to stderr at debug level. An empty Dir
// disables the file.
func Init(cfg Config) error {
	var fileWriter io.Writer = io.Discard
	if cfg.Dir != "" {
		logDir := filepath.Join(cfg.Dir, "logs")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return err
		}
		fileWriter = &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "standup.log"),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	level := log.InfoLevel
	writer := fileWriter
	if cfg.Verbose {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "standup",
	})
	return nil
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
