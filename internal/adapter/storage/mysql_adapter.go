package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the transactions table if it is absent. The table
// is never migrated after that.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id INT AUTO_INCREMENT PRIMARY KEY,
			coffee_name VARCHAR(64) NOT NULL,
			amount INT NOT NULL,
			date_time VARCHAR(19) NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Record(ctx context.Context, sale domain.Sale) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO transactions (coffee_name, amount, date_time)
		VALUES (?, ?, ?)`,
		sale.CoffeeName, sale.Amount, sale.CreatedAt.Format(domain.TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) TotalSales(ctx context.Context) (int, error) {
	var total int
	err := m.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("query total sales: %w", err)
	}
	return total, nil
}

func (m *MySQLAdapter) DailySales(ctx context.Context) ([]domain.DailyTotal, error) {
	// date_time is text, so take the calendar-date prefix directly; DATE()
	// would come back as time.Time under parseTime=true.
	rows, err := m.db.QueryContext(ctx, `
		SELECT SUBSTRING(date_time, 1, 10) AS day, SUM(amount)
		FROM transactions
		GROUP BY day
		ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("query daily sales: %w", err)
	}
	defer rows.Close()

	var totals []domain.DailyTotal
	for rows.Next() {
		var dt domain.DailyTotal
		if err := rows.Scan(&dt.Date, &dt.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily sales: %w", err)
	}
	return totals, nil
}
