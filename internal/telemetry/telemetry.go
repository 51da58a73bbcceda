// Package telemetry provides a JSONL event stream for journal sessions. Each
// submitted entry and every load, save, import or export is recorded as one
// JSON object per line, so a session can be audited after the fact. Only raw
// events are written; nothing is aggregated.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart   = "session_start"
	KindEntrySubmitted = "entry_submitted"
	KindEntryRejected  = "entry_rejected"
	KindStateLoaded    = "state_loaded"
	KindStateSaved     = "state_saved"
	KindStateImported  = "state_imported"
	KindStateExported  = "state_exported"
	KindLoadFailed     = "load_failed"
	KindAssetMissing   = "asset_missing"
)

// Event is a single telemetry record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	mu      sync.Mutex
	session string
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// NewEmitter creates an Emitter that appends JSONL events to the file at
// path, tagging each with a new session ID. The parent directory is created
// if needed.
func NewEmitter(path string) (*Emitter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: NewSessionID(),
	}, nil
}

// SessionID returns the identifier stamped on recorded events, or "" for a
// nil emitter.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event. Events without a session ID are stamped with
// the emitter's. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.SessionID == "" {
		evt.SessionID = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record emits an event of the given kind stamped with the current time.
func (e *Emitter) Record(kind string, data any) error {
	return e.Emit(Event{Timestamp: time.Now().UTC(), Kind: kind, Data: data})
}

// Close closes the underlying file. Calling Close on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
