package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

func TestDailySales_WrongPassword(t *testing.T) {
	ledger := &mockLedger{sales: []domain.Sale{
		{CoffeeName: "Latte", Amount: 150, CreatedAt: time.Now()},
	}}
	svc := NewReportService(ledger, "admin123")

	_, err := svc.DailySales(context.Background(), "letmein")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got: %v", err)
	}
}

func TestDailySales_GroupsByDate(t *testing.T) {
	day := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	ledger := &mockLedger{sales: []domain.Sale{
		{CoffeeName: "Latte", Amount: 150, CreatedAt: day},
		{CoffeeName: "Espresso", Amount: 100, CreatedAt: day.Add(2 * time.Hour)},
		{CoffeeName: "Cappuccino", Amount: 200, CreatedAt: day.Add(5 * time.Hour)},
	}}
	svc := NewReportService(ledger, "admin123")

	totals, err := svc.DailySales(context.Background(), "admin123")
	if err != nil {
		t.Fatalf("daily sales failed: %v", err)
	}

	if len(totals) != 1 {
		t.Fatalf("expected 1 row, got %d", len(totals))
	}
	if totals[0].Date != "2026-08-30" {
		t.Errorf("date = %s, want 2026-08-30", totals[0].Date)
	}
	if totals[0].Total != 450 {
		t.Errorf("total = %d, want 450", totals[0].Total)
	}
}

func TestTotalSales(t *testing.T) {
	ledger := &mockLedger{}
	svc := NewReportService(ledger, "admin123")

	total, err := svc.TotalSales(context.Background())
	if err != nil {
		t.Fatalf("total sales failed: %v", err)
	}
	if total != 0 {
		t.Errorf("empty ledger total = %d, want 0", total)
	}

	ledger.sales = []domain.Sale{
		{CoffeeName: "Latte", Amount: 150, CreatedAt: time.Now()},
		{CoffeeName: "Espresso", Amount: 100, CreatedAt: time.Now()},
	}

	total, err = svc.TotalSales(context.Background())
	if err != nil {
		t.Fatalf("total sales failed: %v", err)
	}
	if total != 250 {
		t.Errorf("total = %d, want 250", total)
	}
}
