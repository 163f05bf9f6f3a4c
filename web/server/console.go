package server

import (
	"fmt"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "notice", "warning", "error"
}

// WebLogger implements log.Logger by forwarding to the server log and copying
// Info and above to a console channel. Debug output stays in the server log.
type WebLogger struct {
	renderID    string
	next        log.Logger
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, next log.Logger, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		next:        next,
		consoleChan: consoleChan,
	}
}

func (wl *WebLogger) Debug(v ...interface{}) { wl.next.Debug(v...) }
func (wl *WebLogger) Debugf(format string, v ...interface{}) {
	wl.next.Debugf(format, v...)
}

func (wl *WebLogger) Info(v ...interface{}) {
	wl.next.Info(v...)
	wl.send("info", fmt.Sprint(v...))
}

func (wl *WebLogger) Infof(format string, v ...interface{}) {
	wl.next.Infof(format, v...)
	wl.send("info", fmt.Sprintf(format, v...))
}

func (wl *WebLogger) Notice(v ...interface{}) {
	wl.next.Notice(v...)
	wl.send("notice", fmt.Sprint(v...))
}

func (wl *WebLogger) Noticef(format string, v ...interface{}) {
	wl.next.Noticef(format, v...)
	wl.send("notice", fmt.Sprintf(format, v...))
}

func (wl *WebLogger) Warning(v ...interface{}) {
	wl.next.Warning(v...)
	wl.send("warning", fmt.Sprint(v...))
}

func (wl *WebLogger) Warningf(format string, v ...interface{}) {
	wl.next.Warningf(format, v...)
	wl.send("warning", fmt.Sprintf(format, v...))
}

func (wl *WebLogger) Error(v ...interface{}) {
	wl.next.Error(v...)
	wl.send("error", fmt.Sprint(v...))
}

func (wl *WebLogger) Errorf(format string, v ...interface{}) {
	wl.next.Errorf(format, v...)
	wl.send("error", fmt.Sprintf(format, v...))
}

// send queues a console message without blocking
func (wl *WebLogger) send(level, message string) {
	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
