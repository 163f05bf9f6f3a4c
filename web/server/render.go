package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/output"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// ProgressUpdate reports rows still to render
type ProgressUpdate struct {
	RowsRemaining int   `json:"rowsRemaining"`
	TotalRows     int   `json:"totalRows"`
	ElapsedMs     int64 `json:"elapsedMs"`
}

// CompleteUpdate carries the finished frame
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// handleRenderStream renders a frame while streaming progress and console output via SSE
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)

	// Start single SSE writer goroutine
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), s.logger, consoleChan)

	var consoleWG sync.WaitGroup
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		close(consoleChan)
		consoleWG.Wait()
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	startTime := time.Now()
	pipeline.Raytracer.SetProgressCallback(func(rowsRemaining, totalRows int) {
		data, _ := json.Marshal(ProgressUpdate{
			RowsRemaining: rowsRemaining,
			TotalRows:     totalRows,
			ElapsedMs:     elapsedMs(startTime),
		})
		s.sendEvent(ctx, sseEventChan, "progress", string(data))
	})

	frame, stats, err := pipeline.Raytracer.Render(ctx)

	// Flush console output before the final event
	close(consoleChan)
	consoleWG.Wait()

	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	imageData, err := frameToBase64PNG(frame)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(CompleteUpdate{ImageData: imageData, Stats: newStats(stats)})
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}
	s.sendEvent(ctx, sseEventChan, "complete", string(data))
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendEvent queues an event for the writer, giving up if the client is gone
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Write SSE event
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				// Channel closed
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				s.logger.Warningf("error marshaling console message: %v", err)
				continue
			}
			s.sendEvent(ctx, sseEventChan, "console", string(data))

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// frameToBase64PNG converts a frame to base64-encoded PNG
func frameToBase64PNG(frame *renderer.Frame) (string, error) {
	var buf bytes.Buffer
	if err := output.WritePNG(&buf, frame); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
