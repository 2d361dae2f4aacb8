package repository

import "sync"

// MemoryKV is a thread-safe in-memory KV. It is the default backend
// when Redis is not configured, and the test double for failure paths.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	// Forced errors, keyed by operation. When set, the matching
	// operation returns the error instead of touching data.
	getErr    error
	setErr    error
	removeErr error
}

// NewMemoryKV creates an empty in-memory KV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]string),
	}
}

// Get returns the value for key, or ErrKeyNotFound
func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getErr != nil {
		return "", m.getErr
	}
	value, ok := m.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set writes the value for key
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// Remove deletes key
func (m *MemoryKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// FailGets makes subsequent Get calls return err. Pass nil to restore
// normal behavior.
func (m *MemoryKV) FailGets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailSets makes subsequent Set calls return err
func (m *MemoryKV) FailSets(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// FailRemoves makes subsequent Remove calls return err
func (m *MemoryKV) FailRemoves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeErr = err
}
