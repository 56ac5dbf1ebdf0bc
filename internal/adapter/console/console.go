package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
	"github.com/rl1809/coffee-kiosk/internal/core/service"
)

// Console is the kiosk's local surface: it reads commands from one
// reader, drives the order and report services, and renders results. It
// stands where the original machine's window stood.
type Console struct {
	orders  *service.OrderService
	reports *service.ReportService
	in      io.Reader
	out     io.Writer
}

func New(orders *service.OrderService, reports *service.ReportService, in io.Reader, out io.Writer) *Console {
	return &Console{orders: orders, reports: reports, in: in, out: out}
}

// Chime returns the post-order notification hook: a terminal bell in
// place of the original machine's sound playback. Fire-and-forget.
func Chime(w io.Writer) service.NotifyFunc {
	return func(service.Receipt) {
		fmt.Fprint(w, "\a")
	}
}

// Run processes commands until quit, EOF, or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.printMenu()
	c.printLevels(ctx)
	fmt.Fprintln(c.out, `Commands: order <item> <amount> | menu | levels | refill | total | report <password> | quit`)

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "order":
			if len(fields) != 3 {
				fmt.Fprintln(c.out, "usage: order <item> <amount>")
				continue
			}
			c.order(ctx, fields[1], fields[2])
		case "menu":
			c.printMenu()
		case "levels":
			c.printLevels(ctx)
		case "refill":
			if err := c.orders.Refill(ctx); err != nil {
				fmt.Fprintf(c.out, "refill failed: %v\n", err)
				continue
			}
			fmt.Fprintln(c.out, "Resources refilled successfully!")
			c.printLevels(ctx)
		case "total":
			total, err := c.reports.TotalSales(ctx)
			if err != nil {
				fmt.Fprintf(c.out, "report failed: %v\n", err)
				continue
			}
			fmt.Fprintf(c.out, "Total sales: %d\n", total)
		case "report":
			if len(fields) != 2 {
				fmt.Fprintln(c.out, "usage: report <password>")
				continue
			}
			c.dailyReport(ctx, fields[1])
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", fields[0])
		}
	}
}

func (c *Console) order(ctx context.Context, itemName, tendered string) {
	receipt, err := c.orders.Order(ctx, itemName, tendered)
	if err != nil {
		fmt.Fprintln(c.out, rejectionMessage(err))
		return
	}
	fmt.Fprintf(c.out, "Here is your %s! Change: %d (receipt %s)\n",
		receipt.ItemName, receipt.Change, receipt.ID)
	c.printLevels(ctx)
}

func (c *Console) dailyReport(ctx context.Context, password string) {
	totals, err := c.reports.DailySales(ctx, password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			fmt.Fprintln(c.out, "Wrong password")
			return
		}
		fmt.Fprintf(c.out, "report failed: %v\n", err)
		return
	}
	if len(totals) == 0 {
		fmt.Fprintln(c.out, "No sales data available.")
		return
	}
	fmt.Fprintln(c.out, "Daily sales:")
	for _, dt := range totals {
		fmt.Fprintf(c.out, "  %s  %d\n", dt.Date, dt.Total)
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, "Menu:")
	for _, item := range c.orders.Menu() {
		fmt.Fprintf(c.out, "  %-12s %d\n", item.Name, item.Price)
	}
}

func (c *Console) printLevels(ctx context.Context) {
	levels, err := c.orders.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "levels unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Water: %d ml | Milk: %d ml | Coffee: %d g\n",
		levels[domain.IngredientWater],
		levels[domain.IngredientMilk],
		levels[domain.IngredientCoffee])
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUnknownItem):
		return "Unknown item, see the menu"
	case errors.Is(err, service.ErrInvalidAmount):
		return "Enter a valid amount"
	case errors.Is(err, service.ErrInsufficientResources):
		return "Not enough resources!"
	case errors.Is(err, service.ErrInsufficientPayment):
		return "Not enough money!"
	case errors.Is(err, service.ErrLedgerUnavailable):
		return "Sale could not be recorded, payment returned"
	default:
		return fmt.Sprintf("order failed: %v", err)
	}
}
