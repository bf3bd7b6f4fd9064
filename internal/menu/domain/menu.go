package domain

import "fmt"

// Money is an amount in cents. All menu prices are dollars.
type Money int64

func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m/100, m%100)
}

// Pizza is a single menu entry, selectable by its one-character code.
type Pizza struct {
	Code     string
	Name     string
	BoxPrice Money
}

// SlicePrice derives the per-slice price from the box price: one
// eighth of a box, rounded half-up to the cent.
func (p Pizza) SlicePrice() Money {
	return (p.BoxPrice + 4) / 8
}

// Extra is an add-on item inside one of the extras categories.
type Extra struct {
	Name  string
	Price Money
}

// ExtraCategory groups add-on items; the kiosk offers one pick per
// category.
type ExtraCategory struct {
	Name  string
	Items []Extra
}
