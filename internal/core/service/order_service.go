package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
	"github.com/rl1809/coffee-kiosk/internal/port"
)

var (
	ErrUnknownItem           = errors.New("unknown menu item")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInsufficientResources = errors.New("not enough resources")
	ErrInsufficientPayment   = errors.New("not enough money")
	ErrLedgerUnavailable     = errors.New("sales ledger unavailable")
)

// Receipt is what a successful order hands back for display.
type Receipt struct {
	ID       string
	ItemName string
	Price    int
	Tendered int
	Change   int
}

// NotifyFunc is invoked fire-and-forget after a completed order (the
// original machine plays a chime). It must never block the workflow.
type NotifyFunc func(Receipt)

type OrderService struct {
	menu      domain.Menu
	inventory port.InventoryRepository
	ledger    port.LedgerRepository
	logger    *zap.Logger
	notify    NotifyFunc
}

func NewOrderService(menu domain.Menu, inventory port.InventoryRepository, ledger port.LedgerRepository, logger *zap.Logger, notify NotifyFunc) *OrderService {
	return &OrderService{
		menu:      menu,
		inventory: inventory,
		ledger:    ledger,
		logger:    logger,
		notify:    notify,
	}
}

func (s *OrderService) Menu() domain.Menu {
	return s.menu
}

// Order runs one order attempt: parse the tendered amount, gate on
// inventory, gate on payment, then debit ingredients and record the sale.
// Every gate is a one-shot check; there are no retries.
func (s *OrderService) Order(ctx context.Context, itemName, tendered string) (*Receipt, error) {
	item, ok := s.menu.Find(itemName)
	if !ok {
		return nil, ErrUnknownItem
	}

	amount, err := strconv.Atoi(strings.TrimSpace(tendered))
	if err != nil || amount < 0 {
		return nil, ErrInvalidAmount
	}

	ok, err = s.inventory.Sufficient(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("sufficiency check failed: %w", err)
	}
	if !ok {
		return nil, ErrInsufficientResources
	}

	outcome := domain.EvaluatePayment(amount, item.Price)
	if !outcome.Success {
		return nil, ErrInsufficientPayment
	}

	if err := s.inventory.Consume(ctx, item); err != nil {
		return nil, fmt.Errorf("consume failed: %w", err)
	}

	sale := domain.Sale{
		CoffeeName: item.Name,
		Amount:     item.Price,
		CreatedAt:  time.Now(),
	}
	if err := s.ledger.Record(ctx, sale); err != nil {
		// The ingredients are already gone; credit them back so a failed
		// write does not leak stock.
		if restoreErr := s.inventory.Restore(ctx, item); restoreErr != nil {
			s.logger.Error("CRITICAL: inventory rollback failed",
				zap.String("item", item.Name),
				zap.Error(restoreErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	receipt := Receipt{
		ID:       uuid.New().String(),
		ItemName: item.Name,
		Price:    item.Price,
		Tendered: amount,
		Change:   outcome.Change,
	}

	s.logger.Info("sale recorded",
		zap.String("receipt_id", receipt.ID),
		zap.String("item", item.Name),
		zap.Int("amount", item.Price),
		zap.Int("change", receipt.Change))

	if s.notify != nil {
		go s.notify(receipt)
	}

	return &receipt, nil
}

// Refill resets all ingredient levels to the machine defaults.
func (s *OrderService) Refill(ctx context.Context) error {
	if err := s.inventory.Refill(ctx); err != nil {
		return fmt.Errorf("refill failed: %w", err)
	}
	s.logger.Info("resources refilled")
	return nil
}

// Snapshot returns the current ingredient levels for display.
func (s *OrderService) Snapshot(ctx context.Context) (map[domain.Ingredient]int, error) {
	return s.inventory.Snapshot(ctx)
}
