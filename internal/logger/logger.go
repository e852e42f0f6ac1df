package logger

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Global logger instance
	Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	output atomic.Pointer[writerHolder]
)

type writerHolder struct {
	w io.Writer
}

func init() {
	output.Store(&writerHolder{w: os.Stdout})
}

// Initialize sets up the global logger on the console, plus any extra writers (e.g. a log file).
// It also sets zerolog package globals, so call it once at startup before any goroutine logs.
func Initialize(logLevel string, extra ...io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var w io.Writer = consoleWriter
	if len(extra) > 0 {
		writers := append([]io.Writer{consoleWriter}, extra...)
		w = zerolog.MultiLevelWriter(writers...)
	}
	output.Store(&writerHolder{w: w})

	Logger = zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	zerolog.SetGlobalLevel(ParseLevel(logLevel))

	// Replace standard log with zerolog
	log.Logger = Logger
}

// ParseLevel maps LOG_LEVEL values to zerolog levels, defaulting to info.
func ParseLevel(logLevel string) zerolog.Level {
	switch logLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// GetForComponent returns a logger with a component field for better filtering.
// Package-level loggers are created before Initialize runs, so they write through
// a writer that always resolves to the current global output.
func GetForComponent(component string) zerolog.Logger {
	return zerolog.New(globalWriter{}).With().Timestamp().Str("component", component).Logger()
}

type globalWriter struct{}

func (globalWriter) Write(p []byte) (int, error) {
	return output.Load().w.Write(p)
}

// FileWriter returns a writer to a log file for optional use alongside console logging
func FileWriter(path string) (io.Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return file, nil
}
