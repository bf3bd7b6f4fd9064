package kiosk

import (
	"fmt"
	"io"
	"strings"

	checkoutdomain "github.com/rushmorepizza/kiosk/internal/checkout/domain"
)

const receiptWidth = 60

// Receipt is everything the renderer needs for one finalized order.
// Amounts are cents. Postcode and Email are blank for takeout.
type Receipt struct {
	OrderNumber     int
	OrderType       string
	PizzaType       string
	Quantity        int
	DiscountApplied bool
	DeliveryType    string

	PizzaSubtotal  int64
	ExtrasSubtotal int64
	Total          int64
	Extras         []checkoutdomain.Line

	Postcode string
	Email    string
}

// RenderReceipt writes the fixed-width receipt. Pure formatting; it
// does not touch the order.
func RenderReceipt(w io.Writer, r Receipt) {
	rule := strings.Repeat("-", receiptWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, center("ORDER RECEIPT", receiptWidth))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Order Number: %d\n", r.OrderNumber)
	fmt.Fprintf(w, "Order Type: %s\n", r.OrderType)
	fmt.Fprintf(w, "Pizza Type: %s\n", r.PizzaType)
	fmt.Fprintf(w, "Quantity: %d\n", r.Quantity)
	fmt.Fprintf(w, "Discount Applied: %s\n", yesNo(r.DiscountApplied))
	fmt.Fprintf(w, "Delivery Type: %s\n", r.DeliveryType)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-35s %s\n", "Subtotal for Pizza:", dollars(r.PizzaSubtotal))

	if len(r.Extras) > 0 {
		fmt.Fprintln(w, "Extras:")
		for _, e := range r.Extras {
			fmt.Fprintf(w, "  - %s | %-20s %s\n", capitalize(e.Category), e.Name, dollars(e.Price))
		}
		fmt.Fprintf(w, "%-35s %s\n", "Subtotal for Extras:", dollars(r.ExtrasSubtotal))
	} else {
		fmt.Fprintln(w, "Extras: None")
	}

	fmt.Fprintf(w, "%-35s %s\n", "Total Price:", dollars(r.Total))

	if r.Postcode != "" {
		fmt.Fprintf(w, "Postcode: %s\n", r.Postcode)
	}
	if r.Email != "" {
		fmt.Fprintf(w, "A receipt has been sent to %s (imaginary mail server activated!)\n", r.Email)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func dollars(c int64) string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
