package domain

// PaymentOutcome is the transient result of evaluating tendered cash
// against a price. Not persisted.
type PaymentOutcome struct {
	Tendered int
	Price    int
	Success  bool
	Change   int
}

// EvaluatePayment accepts the payment iff the tendered amount covers the
// price. Change is tendered minus price on success, zero otherwise.
// Pure: no state, no side effects.
func EvaluatePayment(tendered, price int) PaymentOutcome {
	out := PaymentOutcome{Tendered: tendered, Price: price}
	if tendered >= price {
		out.Success = true
		out.Change = tendered - price
	}
	return out
}
