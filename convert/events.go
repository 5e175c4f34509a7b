package convert

import (
	"slices"
	"sync"
	"time"
)

// EventType represents the type of conversion event.
type EventType string

const (
	EventConversionStarted   EventType = "conversion_started"
	EventHeaderParsed        EventType = "header_parsed"
	EventSectionRendered     EventType = "section_rendered"
	EventDocumentWritten     EventType = "document_written"
	EventConversionCompleted EventType = "conversion_completed"
	EventConversionFailed    EventType = "conversion_failed"
)

// Event is an observable step of a conversion run.
type Event struct {
	Type      EventType      `json:"type"`
	RunID     string         `json:"run_id"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter fans conversion events out to listeners. The zero value is
// ready to use; a nil emitter discards everything.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates an EventEmitter with no listeners.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{}
}

// On adds a listener. Listeners run on the emitting goroutine, in the order
// they were added.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, listener)
	e.mu.Unlock()
}

// Emit delivers event to every listener before returning.
func (e *EventEmitter) Emit(event Event) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := slices.Clone(e.listeners)
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}

func newEvent(t EventType, runID string, data map[string]any) Event {
	return Event{Type: t, RunID: runID, Timestamp: time.Now(), Data: data}
}

// ConversionStartedEvent creates a conversion_started event.
func ConversionStartedEvent(runID, id, input string) Event {
	return newEvent(EventConversionStarted, runID, map[string]any{
		"id":    id,
		"input": input,
	})
}

// HeaderParsedEvent creates a header_parsed event.
func HeaderParsedEvent(runID string, rows, columns, colors int) Event {
	return newEvent(EventHeaderParsed, runID, map[string]any{
		"rows":    rows,
		"columns": columns,
		"colors":  colors,
	})
}

// SectionRenderedEvent creates a section_rendered event.
func SectionRenderedEvent(runID, section string, rows int) Event {
	return newEvent(EventSectionRendered, runID, map[string]any{
		"section": section,
		"rows":    rows,
	})
}

// DocumentWrittenEvent creates a document_written event.
func DocumentWrittenEvent(runID, path string, size int) Event {
	return newEvent(EventDocumentWritten, runID, map[string]any{
		"path":       path,
		"size_bytes": size,
	})
}

// ConversionCompletedEvent creates a conversion_completed event.
func ConversionCompletedEvent(runID string, duration time.Duration, documents int, dryRun bool) Event {
	return newEvent(EventConversionCompleted, runID, map[string]any{
		"duration_ms": duration.Milliseconds(),
		"documents":   documents,
		"dry_run":     dryRun,
	})
}

// ConversionFailedEvent creates a conversion_failed event.
func ConversionFailedEvent(runID, err string, duration time.Duration) Event {
	return newEvent(EventConversionFailed, runID, map[string]any{
		"error":       err,
		"duration_ms": duration.Milliseconds(),
	})
}
