package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/coffeekiosk?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func setupLedger(t *testing.T) (*MySQLAdapter, *sql.DB) {
	db := getMySQLDB(t)
	ctx := context.Background()

	adapter := NewMySQLAdapter(db)
	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	return adapter, db
}

func TestRecord_AppendsRow(t *testing.T) {
	adapter, db := setupLedger(t)
	defer db.Close()

	ctx := context.Background()
	sale := domain.Sale{
		CoffeeName: "Latte",
		Amount:     150,
		CreatedAt:  time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
	}
	if err := adapter.Record(ctx, sale); err != nil {
		t.Fatalf("record: %v", err)
	}

	var name, dateTime string
	var amount int
	err := db.QueryRowContext(ctx,
		`SELECT coffee_name, amount, date_time FROM transactions`,
	).Scan(&name, &amount, &dateTime)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if name != "Latte" || amount != 150 {
		t.Errorf("row = (%s, %d), want (Latte, 150)", name, amount)
	}
	if dateTime != "2026-08-30 10:15:00" {
		t.Errorf("date_time = %s, want 2026-08-30 10:15:00", dateTime)
	}
}

func TestTotalSales_EmptyAndSum(t *testing.T) {
	adapter, db := setupLedger(t)
	defer db.Close()

	ctx := context.Background()

	total, err := adapter.TotalSales(ctx)
	if err != nil {
		t.Fatalf("total sales: %v", err)
	}
	if total != 0 {
		t.Errorf("empty ledger total = %d, want 0", total)
	}

	now := time.Now()
	for _, amount := range []int{150, 100, 200} {
		sale := domain.Sale{CoffeeName: "Latte", Amount: amount, CreatedAt: now}
		if err := adapter.Record(ctx, sale); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	total, err = adapter.TotalSales(ctx)
	if err != nil {
		t.Fatalf("total sales: %v", err)
	}
	if total != 450 {
		t.Errorf("total = %d, want 450", total)
	}
}

func TestDailySales_GroupsAndOrders(t *testing.T) {
	adapter, db := setupLedger(t)
	defer db.Close()

	ctx := context.Background()

	day1 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		{CoffeeName: "Cappuccino", Amount: 200, CreatedAt: day2},
		{CoffeeName: "Latte", Amount: 150, CreatedAt: day1},
		{CoffeeName: "Espresso", Amount: 100, CreatedAt: day1.Add(3 * time.Hour)},
	}
	for _, sale := range sales {
		if err := adapter.Record(ctx, sale); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	totals, err := adapter.DailySales(ctx)
	if err != nil {
		t.Fatalf("daily sales: %v", err)
	}

	want := []domain.DailyTotal{
		{Date: "2026-08-29", Total: 250},
		{Date: "2026-08-30", Total: 200},
	}
	if len(totals) != len(want) {
		t.Fatalf("got %d rows, want %d", len(totals), len(want))
	}
	for i, w := range want {
		if totals[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, totals[i], w)
		}
	}
}
