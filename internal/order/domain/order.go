package domain

import "time"

const (
	OrderTypeBox   = "Box"
	OrderTypeSlice = "Slice"
)

// Extra is one add-on persisted with an order. Price is cents.
type Extra struct {
	Category string
	Name     string
	Price    int64
}

// Order is one completed purchase. It is immutable once placed and
// only ever appended to the log.
type Order struct {
	PlacedAt        time.Time
	PizzaType       string
	OrderType       string
	Quantity        int
	TotalPrice      int64
	DiscountApplied bool
	Extras          []Extra
}
