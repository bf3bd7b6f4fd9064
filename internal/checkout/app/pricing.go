package app

import (
	"errors"
	"fmt"

	"github.com/rushmorepizza/kiosk/internal/checkout/domain"
)

// MaxSlicesPerOrder caps slice orders; the prompt layer rejects larger
// quantities rather than clamping them.
const MaxSlicesPerOrder = 16

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// DiscountPercent returns the quantity discount for a mode as a whole
// percentage. Boxes: 10% from 5, 20% from 10. Slices: 5% from 8.
func DiscountPercent(mode domain.Mode, quantity int) int {
	switch mode {
	case domain.ModeBox:
		switch {
		case quantity >= 10:
			return 20
		case quantity >= 5:
			return 10
		}
	case domain.ModeSlice:
		if quantity >= 8 {
			return 5
		}
	}
	return 0
}

// BuildQuote prices an order: the pizza subtotal is unit price times
// quantity with the quantity discount applied, rounded half-up to the
// cent; extras are summed undiscounted on top.
func BuildQuote(mode domain.Mode, quantity int, unitPrice int64, extras []domain.Line) (domain.Quote, error) {
	if quantity < 1 {
		return domain.Quote{}, fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}
	if unitPrice < 0 {
		return domain.Quote{}, fmt.Errorf("unit price cannot be negative, got %d", unitPrice)
	}

	discount := DiscountPercent(mode, quantity)
	pizzaSubtotal := (unitPrice*int64(quantity)*int64(100-discount) + 50) / 100

	var extrasSubtotal int64
	for _, line := range extras {
		extrasSubtotal += line.Price
	}

	return domain.Quote{
		Mode:            mode,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: discount,
		DiscountApplied: discount > 0,
		PizzaSubtotal:   pizzaSubtotal,
		ExtrasSubtotal:  extrasSubtotal,
		Total:           pizzaSubtotal + extrasSubtotal,
		Extras:          extras,
	}, nil
}
