package app

import (
	"testing"

	"github.com/rushmorepizza/kiosk/internal/checkout/domain"
	"pgregory.net/rapid"
)

func genMode(t *rapid.T) domain.Mode {
	if rapid.Bool().Draw(t, "box") {
		return domain.ModeBox
	}
	return domain.ModeSlice
}

func TestQuoteFormulaExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := genMode(t)
		qty := rapid.IntRange(1, 40).Draw(t, "qty")
		unit := rapid.Int64Range(1, 5000).Draw(t, "unit")

		q, err := BuildQuote(mode, qty, unit, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		d := DiscountPercent(mode, qty)
		want := (unit*int64(qty)*int64(100-d) + 50) / 100
		if q.PizzaSubtotal != want {
			t.Fatalf("subtotal %d, want %d (unit=%d qty=%d d=%d)", q.PizzaSubtotal, want, unit, qty, d)
		}
		if q.DiscountApplied != (d > 0) {
			t.Fatalf("discountApplied=%v with rate %d", q.DiscountApplied, d)
		}
	})
}

func TestQuoteMonotonicInQuantity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := genMode(t)
		qty := rapid.IntRange(1, 39).Draw(t, "qty")
		unit := rapid.Int64Range(1, 5000).Draw(t, "unit")

		lo, err := BuildQuote(mode, qty, unit, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hi, err := BuildQuote(mode, qty+1, unit, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hi.PizzaSubtotal < lo.PizzaSubtotal {
			t.Fatalf("subtotal decreased: qty %d -> %d gave %d -> %d",
				qty, qty+1, lo.PizzaSubtotal, hi.PizzaSubtotal)
		}
	})
}

func TestQuoteTotalIsSubtotalsSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := genMode(t)
		qty := rapid.IntRange(1, 16).Draw(t, "qty")
		unit := rapid.Int64Range(1, 2000).Draw(t, "unit")

		n := rapid.IntRange(0, 5).Draw(t, "extras-count")
		extras := make([]domain.Line, 0, n)
		var wantExtras int64
		for i := 0; i < n; i++ {
			price := rapid.Int64Range(0, 500).Draw(t, "extra-price")
			extras = append(extras, domain.Line{Category: "sides", Name: "x", Price: price})
			wantExtras += price
		}

		q, err := BuildQuote(mode, qty, unit, extras)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ExtrasSubtotal != wantExtras {
			t.Fatalf("extras subtotal %d, want %d", q.ExtrasSubtotal, wantExtras)
		}
		if q.Total != q.PizzaSubtotal+q.ExtrasSubtotal {
			t.Fatalf("total %d != %d + %d", q.Total, q.PizzaSubtotal, q.ExtrasSubtotal)
		}
	})
}
