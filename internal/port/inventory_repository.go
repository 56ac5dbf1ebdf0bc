package port

import (
	"context"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

type InventoryRepository interface {
	// Sufficient reports whether every ingredient the item needs is
	// available at its required quantity.
	Sufficient(ctx context.Context, item domain.MenuItem) (bool, error)

	// Consume debits the item's recipe from current levels. The caller
	// must have already confirmed sufficiency; no re-check is performed.
	Consume(ctx context.Context, item domain.MenuItem) error

	// Restore credits the item's recipe back (rollback when the sale
	// could not be recorded).
	Restore(ctx context.Context, item domain.MenuItem) error

	// Refill resets every ingredient to its default level, discarding
	// prior levels. Always succeeds barring a store error.
	Refill(ctx context.Context) error

	// Snapshot returns a read-only view of current levels for display.
	Snapshot(ctx context.Context) (map[domain.Ingredient]int, error)
}
