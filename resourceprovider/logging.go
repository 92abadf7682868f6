package resourceprovider

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// eventLogger emits structured JSON lifecycle events, the library-
// internal analogue of pkg/middleware/logging.go's request logger: same
// timestamp/correlation-id/JSON-marshal shape, minus the HTTP request
// fields this package has no use for. A fresh correlation id is
// generated per event rather than propagated from a caller, since
// Provider has no request context to carry one in.
type eventLogger struct {
	enabled bool
}

func newEventLogger(enabled bool) *eventLogger {
	return &eventLogger{enabled: enabled}
}

func (l *eventLogger) event(name string, fields map[string]interface{}) {
	if !l.enabled {
		return
	}

	entry := map[string]interface{}{
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"correlation_id": uuid.New().String(),
		"event":          name,
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[ERROR] resourceprovider: failed to marshal log entry: %v", err)
		return
	}
	log.Printf("[INFO] %s", string(data))
}

func (l *eventLogger) sourceAdded(sourceID string) {
	l.event("source_added", map[string]interface{}{"source_id": sourceID})
}

func (l *eventLogger) sourceRemoved(sourceID string) {
	l.event("source_removed", map[string]interface{}{"source_id": sourceID})
}

func (l *eventLogger) loadStarted(sourceID, resourceID string) {
	l.event("load_started", map[string]interface{}{
		"source_id":   sourceID,
		"resource_id": resourceID,
	})
}

func (l *eventLogger) loadSucceeded(sourceID, resourceID string, duration time.Duration) {
	l.event("load_succeeded", map[string]interface{}{
		"source_id":   sourceID,
		"resource_id": resourceID,
		"duration_ms": duration.Milliseconds(),
	})
}

func (l *eventLogger) loadFailed(sourceID, resourceID string, duration time.Duration, err error) {
	l.event("load_failed", map[string]interface{}{
		"source_id":   sourceID,
		"resource_id": resourceID,
		"duration_ms": duration.Milliseconds(),
		"error":       err.Error(),
	})
}

func (l *eventLogger) markedUnused(sourceID, resourceID string) {
	l.event("marked_unused", map[string]interface{}{
		"source_id":   sourceID,
		"resource_id": resourceID,
	})
}
