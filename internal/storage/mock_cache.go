package storage

import (
	"context"
	"sync"

	"github.com/jwebster45206/battle-engine/pkg/generator"
)

// MockCache is an in-memory RecordCache for tests.
type MockCache struct {
	mu        sync.RWMutex
	records   map[string]generator.BattleRecord
	pingError error

	Gets int
	Puts int
}

var _ RecordCache = (*MockCache)(nil)

func NewMockCache() *MockCache {
	return &MockCache{records: make(map[string]generator.BattleRecord)}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockCache) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockCache) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockCache) GetRecord(ctx context.Context, key RecordKey) (*generator.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	rec, ok := m.records[key.String()]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *MockCache) PutRecord(ctx context.Context, key RecordKey, rec generator.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Puts++
	m.records[key.String()] = rec
	return nil
}

func (m *MockCache) Close() error { return nil }
