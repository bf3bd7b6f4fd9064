package domain

import "testing"

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents Money
		want  string
	}{
		{340, "$3.40"},
		{90, "$0.90"},
		{1200, "$12.00"},
		{43, "$0.43"},
		{0, "$0.00"},
	}
	for _, c := range cases {
		if got := c.cents.String(); got != c.want {
			t.Fatalf("Money(%d).String() = %q, want %q", int64(c.cents), got, c.want)
		}
	}
}

func TestSlicePriceRoundsHalfUp(t *testing.T) {
	cases := []struct {
		name string
		box  Money
		want Money
	}{
		{"exact eighth", 400, 50},
		{"half rounds up", 340, 43},
		{"half rounds up again", 500, 63},
		{"quarter rounds down", 450, 56},
		{"hawaiian half up", 700, 88},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Pizza{Name: "x", BoxPrice: c.box}
			if got := p.SlicePrice(); got != c.want {
				t.Fatalf("SlicePrice of %d = %d, want %d", int64(c.box), int64(got), int64(c.want))
			}
		})
	}
}
