package port

import (
	"context"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

type LedgerRepository interface {
	// Record durably appends one sale. A failed write is reported, never
	// silently dropped.
	Record(ctx context.Context, sale domain.Sale) error

	// TotalSales sums all recorded amounts; zero when no sales exist.
	TotalSales(ctx context.Context) (int, error)

	// DailySales returns one row per distinct calendar date in the
	// ledger, ordered by date ascending.
	DailySales(ctx context.Context) ([]domain.DailyTotal, error)
}
