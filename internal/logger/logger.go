// Package logger provides structured JSON logging and run metrics for the converter.
//
// The logger wraps logrus with a JSON formatter and keeps a small Fields-based
// API so call sites read the same everywhere. Entries carry a timestamp, level,
// message, optional structured fields and an optional error. Output goes to
// stderr by default so the CSV or report written to stdout stays clean.
//
// Example usage:
//
//	logger.Info("Processing file", logger.Fields{
//	    "file": "2024-01-02.html",
//	})
//
//	log := logger.Default()
//	log.Warn("Could not read file", logger.Fields{
//	    "file": path,
//	}, err)
//
//	metrics := logger.DefaultMetrics()
//	metrics.IncrCounter("draws.extracted")
//	metrics.RecordTiming("convert.run", time.Since(start))
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel converts a level name such as "INFO" or "warning" into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return "", fmt.Errorf("unknown log level: %s", s)
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger provides structured logging
type Logger struct {
	log *logrus.Logger
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that writes JSON lines to output.
// Messages below level are discarded.
func New(level Level, output io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetLevel(level.logrus())
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		DataKey:         "fields",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	return &Logger{log: l}
}

// SetDefault replaces the logger used by the package-level functions
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) entry(fields Fields, err error) *logrus.Entry {
	e := logrus.NewEntry(l.log)
	if len(fields) > 0 {
		e = e.WithFields(logrus.Fields(fields))
	}
	if err != nil {
		e = e.WithError(err)
	}
	return e
}

// Debug logs detailed diagnostic information
func (l *Logger) Debug(message string, fields Fields) {
	l.entry(fields, nil).Debug(message)
}

// Info logs general progress
func (l *Logger) Info(message string, fields Fields) {
	l.entry(fields, nil).Info(message)
}

// Warn logs a problem that was recovered from, with the error that caused it
func (l *Logger) Warn(message string, fields Fields, err error) {
	l.entry(fields, err).Warn(message)
}

// Error logs a failure that stops the current operation
func (l *Logger) Error(message string, fields Fields, err error) {
	l.entry(fields, err).Error(message)
}

// Package-level convenience functions using the default logger

func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Metrics tracks counters and timings for a run. All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// TimingStats summarizes the durations recorded under one name
type TimingStats struct {
	Count   int           `json:"count"`
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
}

// Snapshot is a point-in-time copy of Metrics
type Snapshot struct {
	Counters map[string]int64       `json:"counters"`
	Timings  map[string]TimingStats `json:"timings"`
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// DefaultMetrics returns the process-wide tracker used when a caller does
// not supply its own
func DefaultMetrics() *Metrics {
	return defaultMetrics
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.AddCounter(name, 1)
}

// AddCounter adds delta to a counter
func (m *Metrics) AddCounter(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// RecordTiming records one duration measurement
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], d)
}

// GetSnapshot returns a deep copy of the current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Counters: make(map[string]int64, len(m.counters)),
		Timings:  make(map[string]TimingStats, len(m.timings)),
	}
	for k, v := range m.counters {
		snap.Counters[k] = v
	}

	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}

		stats := TimingStats{Count: len(durations), Min: durations[0], Max: durations[0]}
		for _, d := range durations {
			stats.Total += d
			stats.Min = min(stats.Min, d)
			stats.Max = max(stats.Max, d)
		}
		stats.Average = stats.Total / time.Duration(len(durations))
		snap.Timings[name] = stats
	}

	return snap
}

// Fields flattens the snapshot for logging
func (s Snapshot) Fields() Fields {
	f := make(Fields, len(s.Counters)+len(s.Timings))
	for k, v := range s.Counters {
		f[k] = v
	}
	for k, v := range s.Timings {
		f[k] = v.Total.String()
	}
	return f
}
