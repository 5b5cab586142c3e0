package server

import (
	"fmt"
	"time"

	"github.com/df07/go-scene-generator/internal/log"
	"github.com/df07/go-scene-generator/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "error"
}

// WebLogger implements core.Logger for a single scene request. Messages go to the
// server log and, when a console channel is set, to the request's trace.
type WebLogger struct {
	requestID   string
	logger      *log.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific request
func NewWebLogger(requestID string, logger *log.Logger, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		requestID:   requestID,
		logger:      logger,
		consoleChan: consoleChan,
	}
}

// Debugf implements core.Logger interface
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if wl.logger != nil {
		wl.logger.Debugw(message, "request", wl.requestID)
	}

	// Send to the trace if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "debug",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// drainConsole collects every message currently buffered in ch
func drainConsole(ch chan ConsoleMessage) []ConsoleMessage {
	messages := make([]ConsoleMessage, 0, len(ch))
	for {
		select {
		case msg := <-ch:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
