package domain

// Mode distinguishes whole-box orders from per-slice orders.
type Mode string

const (
	ModeBox   Mode = "Box"
	ModeSlice Mode = "Slice"
)

// Line is one selected extra on the quote. Price is cents.
type Line struct {
	Category string
	Name     string
	Price    int64
}

// Quote is the priced result of one order. All amounts are cents.
type Quote struct {
	Mode     Mode
	Quantity int

	UnitPrice       int64
	DiscountPercent int
	DiscountApplied bool

	PizzaSubtotal  int64
	ExtrasSubtotal int64
	Total          int64

	Extras []Line
}
