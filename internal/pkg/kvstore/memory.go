package kvstore

import (
	"context"
	"sync"
)

// Memory keeps values in a map. Used for tests and the "memory" storage driver.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

type memoryTxKey struct{}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// inTx reports whether ctx already holds this store's lock.
func (m *Memory) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(memoryTxKey{}).(*Memory)
	return owner == m
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !m.inTx(ctx) {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	if !m.inTx(ctx) {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	if !m.inTx(ctx) {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	delete(m.data, key)
	return nil
}

// WithinTx holds the store lock for the duration of fn. Writes go straight to
// the map; a snapshot taken up front is restored when fn fails or panics.
func (m *Memory) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.inTx(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	snapshot := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		snapshot[k] = v
	}

	committed := false
	defer func() {
		if !committed {
			m.data = snapshot
		}
		m.mu.Unlock()
	}()

	if err := fn(context.WithValue(ctx, memoryTxKey{}, m)); err != nil {
		return err
	}
	committed = true
	return nil
}

func (m *Memory) Close() error {
	return nil
}
