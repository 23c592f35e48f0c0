package repo

import (
	"context"
	"encoding/json"
	"sync"

	"almanacco/internal/services/events/domain"
)

// Memory is an in-process domain.RecordPort for tests and local runs.
// Records round-trip through JSON so callers see the same copy semantics
// as the dynamo repository.
type Memory struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemory constructs an empty in-memory record repository
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

// Load implements domain.RecordPort
func (m *Memory) Load(_ context.Context, userID string) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.records[userID]
	if !ok {
		return domain.Record{}, nil
	}
	var rec domain.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save implements domain.RecordPort
func (m *Memory) Save(_ context.Context, userID string, rec domain.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = body
	return nil
}
