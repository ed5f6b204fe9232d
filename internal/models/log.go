package models

import (
	"sync"
	"time"

	"github.com/ternarybob/arbor"
)

// LogEntry is a single timestamped, leveled event accumulated during one
// request and returned alongside results for UI display.
//
// Timestamp format: "15:04:05.000" (HH:MM:SS.mmm) for display.
// Log levels: "DEBUG", "INFO", "WARNING", "ERROR".
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Level     string `json:"level"`
}

// LogRecorder accumulates request-scoped log entries and mirrors each one to
// the server logger. One recorder exists per request; entries are returned in
// append order.
type LogRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
	logger  arbor.ILogger
}

// NewLogRecorder creates a recorder mirroring to the given server logger
func NewLogRecorder(logger arbor.ILogger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Debugf records a DEBUG entry
func (r *LogRecorder) Debugf(message string) { r.append(message, "DEBUG") }

// Infof records an INFO entry
func (r *LogRecorder) Infof(message string) { r.append(message, "INFO") }

// Warnf records a WARNING entry
func (r *LogRecorder) Warnf(message string) { r.append(message, "WARNING") }

// Errorf records an ERROR entry
func (r *LogRecorder) Errorf(message string) { r.append(message, "ERROR") }

// Entries returns the accumulated entries in append order
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *LogRecorder) append(message, level string) {
	entry := LogEntry{
		Timestamp: time.Now().Format("15:04:05.000"),
		Message:   message,
		Level:     level,
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	if r.logger == nil {
		return
	}
	switch level {
	case "ERROR":
		r.logger.Error().Msg(message)
	case "WARNING":
		r.logger.Warn().Msg(message)
	case "DEBUG":
		r.logger.Debug().Msg(message)
	default:
		r.logger.Info().Msg(message)
	}
}
