package storage

import (
	"context"
	"sync"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

// MemoryAdapter keeps ingredient levels in process memory, starting at the
// machine defaults. It backs the kiosk when no Redis is configured and the
// inventory-side tests.
type MemoryAdapter struct {
	mu     sync.Mutex
	levels map[domain.Ingredient]int
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{levels: domain.DefaultLevels()}
}

func (m *MemoryAdapter) Sufficient(ctx context.Context, item domain.MenuItem) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ing, qty := range item.Recipe {
		if m.levels[ing] < qty {
			return false, nil
		}
	}
	return true, nil
}

func (m *MemoryAdapter) Consume(ctx context.Context, item domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ing, qty := range item.Recipe {
		m.levels[ing] -= qty
	}
	return nil
}

func (m *MemoryAdapter) Restore(ctx context.Context, item domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ing, qty := range item.Recipe {
		m.levels[ing] += qty
	}
	return nil
}

func (m *MemoryAdapter) Refill(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.levels = domain.DefaultLevels()
	return nil
}

func (m *MemoryAdapter) Snapshot(ctx context.Context) (map[domain.Ingredient]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	levels := make(map[domain.Ingredient]int, len(m.levels))
	for ing, level := range m.levels {
		levels[ing] = level
	}
	return levels, nil
}
