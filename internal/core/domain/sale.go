package domain

import "time"

// TimeLayout is the ledger timestamp format, stored as text.
const TimeLayout = "2006-01-02 15:04:05"

// Sale is one completed order as recorded in the ledger. Append-only:
// never updated or deleted after Record.
type Sale struct {
	CoffeeName string
	Amount     int
	CreatedAt  time.Time
}

// DailyTotal is one row of the daily sales report. Date is a calendar
// date in YYYY-MM-DD form.
type DailyTotal struct {
	Date  string
	Total int
}
