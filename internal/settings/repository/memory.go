package repository

import (
	"context"
	"maps"
	"sync"

	mongotx "careconnect/pkg/db/mongo"
)

type memorySettingsRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewMemorySettingsRepository() KeyValueStore {
	return &memorySettingsRepository{
		items: make(map[string]map[string]string),
	}
}

type txKey struct{}

// inTx reports whether ctx belongs to a transaction that already holds r.mu.
func (r *memorySettingsRepository) inTx(ctx context.Context) bool {
	return ctx.Value(txKey{}) == r
}

func (r *memorySettingsRepository) GetItem(ctx context.Context, owner, key string) (string, bool, error) {
	if !r.inTx(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	value, ok := r.items[owner][key]
	return value, ok, nil
}

func (r *memorySettingsRepository) SetItem(ctx context.Context, owner, key, value string) error {
	if !r.inTx(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	if r.items[owner] == nil {
		r.items[owner] = make(map[string]string)
	}
	r.items[owner][key] = value
	return nil
}

func (r *memorySettingsRepository) RemoveItem(ctx context.Context, owner, key string) error {
	if !r.inTx(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	delete(r.items[owner], key)
	if len(r.items[owner]) == 0 {
		delete(r.items, owner)
	}
	return nil
}

// ExecuteTransaction holds the write lock for fn and restores the previous
// contents when fn fails.
func (r *memorySettingsRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]map[string]string, len(r.items))
	for owner, values := range r.items {
		snapshot[owner] = maps.Clone(values)
	}

	if err := (mongotx.Inline{}).ExecuteTransaction(context.WithValue(ctx, txKey{}, r), fn); err != nil {
		r.items = snapshot
		return err
	}
	return nil
}
