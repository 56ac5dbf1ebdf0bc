package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
	"github.com/rl1809/coffee-kiosk/internal/port"
)

var ErrWrongPassword = errors.New("wrong password")

// ReportService answers sales queries. The daily report sits behind a
// shared admin secret; this is a gate, not real authentication.
type ReportService struct {
	ledger      port.LedgerRepository
	adminSecret string
}

func NewReportService(ledger port.LedgerRepository, adminSecret string) *ReportService {
	return &ReportService{ledger: ledger, adminSecret: adminSecret}
}

func (s *ReportService) TotalSales(ctx context.Context) (int, error) {
	total, err := s.ledger.TotalSales(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return total, nil
}

func (s *ReportService) DailySales(ctx context.Context, password string) ([]domain.DailyTotal, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminSecret)) != 1 {
		return nil, ErrWrongPassword
	}

	totals, err := s.ledger.DailySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return totals, nil
}
