// Package kiosk drives one interactive ordering terminal: menu, order
// prompts, extras, delivery, receipt, persistence.
package kiosk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	checkoutapp "github.com/rushmorepizza/kiosk/internal/checkout/app"
	checkoutdomain "github.com/rushmorepizza/kiosk/internal/checkout/domain"
	customerapp "github.com/rushmorepizza/kiosk/internal/customer/app"
	menuapp "github.com/rushmorepizza/kiosk/internal/menu/app"
	menudomain "github.com/rushmorepizza/kiosk/internal/menu/domain"
	orderapp "github.com/rushmorepizza/kiosk/internal/order/app"
	orderdomain "github.com/rushmorepizza/kiosk/internal/order/domain"
)

// errInputClosed marks the end of the input stream; the kiosk treats
// it like a quit.
var errInputClosed = errors.New("input closed")

type Options struct {
	Menu     *menuapp.Service
	Orders   *orderapp.Service
	Profiles *customerapp.Service

	Rand   Rand
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

type Kiosk struct {
	menu     *menuapp.Service
	orders   *orderapp.Service
	profiles *customerapp.Service

	rng Rand
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger
}

func New(opts Options) *Kiosk {
	if opts.Rand == nil {
		opts.Rand = SystemRand{}
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Kiosk{
		menu:     opts.Menu,
		orders:   opts.Orders,
		profiles: opts.Profiles,
		rng:      opts.Rand,
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		log:      opts.Logger,
	}
}

// Run loops the top-level menu until the customer quits, the input
// stream ends, or the context is cancelled.
func (k *Kiosk) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		k.printMenu()
		choice, err := k.readLine("What do you want to pick? ")
		if err != nil {
			return k.closeOut(err)
		}

		choice = strings.ToLower(choice)
		if choice == "q" {
			fmt.Fprintln(k.out, "Goodbye and have a nice day!\nCome back another time...")
			return nil
		}

		pizza, err := k.menu.FindPizza(choice)
		if errors.Is(err, menuapp.ErrNotFound) {
			fmt.Fprintln(k.out, "We do not have this Pizza Flavour for now. Maybe later!")
			continue
		}

		log := k.log.With(
			slog.String("session_id", uuid.NewString()),
			slog.String("pizza", pizza.Name),
		)
		if err := k.orderSession(ctx, log, pizza); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			log.Error("order session failed", slog.Any("err", err))
			fmt.Fprintln(k.out, "Sorry, something went wrong with your order. Please try again.")
		}
	}
}

func (k *Kiosk) printMenu() {
	fmt.Fprintln(k.out, "\nWelcome to RushMore Pizzeria\nTake a look at our Menu:")
	for _, p := range k.menu.Pizzas() {
		fmt.Fprintf(k.out, "%s: %s - %s\n", p.Code, p.Name, p.BoxPrice)
	}
	fmt.Fprintln(k.out, "Pick your choice from (1-9) and we serve you right away!\nor type in 'q' to quit:")
}

// orderSession walks one customer from pizza selection to a persisted
// order. Cancellation at any prompt returns to the top menu with
// nothing priced or saved.
func (k *Kiosk) orderSession(ctx context.Context, log *slog.Logger, pizza menudomain.Pizza) error {
	fmt.Fprintf(k.out, "You selected %s\nPrice - %s per box | %s per slice\n",
		pizza.Name, pizza.BoxPrice, pizza.SlicePrice())

	mode, ok, err := k.promptMode()
	if err != nil || !ok {
		return err
	}

	unitPrice := pizza.BoxPrice
	if mode == checkoutdomain.ModeSlice {
		unitPrice = pizza.SlicePrice()
	}

	quantity, ok, err := k.promptQuantity(mode)
	if err != nil || !ok {
		return err
	}

	extras, err := k.promptFullMeal()
	if err != nil {
		return err
	}

	quote, err := checkoutapp.BuildQuote(mode, quantity, int64(unitPrice), extras)
	if err != nil {
		return err
	}

	delivery, err := k.handleDelivery(ctx, log)
	if err != nil {
		return err
	}

	orderNumber := 1 + k.rng.Intn(1000)

	unit := "box(es)"
	if mode == checkoutdomain.ModeSlice {
		unit = "Slice(s)"
	}
	fmt.Fprintf(k.out, "Your total payment is %s for %d of %s Pizza %s including selected extras.\n",
		dollars(quote.Total), quote.Quantity, pizza.Name, unit)
	if quote.DiscountApplied {
		fmt.Fprintf(k.out, "A discount of %d%% was applied.\n", quote.DiscountPercent)
	}

	RenderReceipt(k.out, Receipt{
		OrderNumber:     orderNumber,
		OrderType:       string(quote.Mode),
		PizzaType:       pizza.Name,
		Quantity:        quote.Quantity,
		DiscountApplied: quote.DiscountApplied,
		DeliveryType:    delivery.Type,
		PizzaSubtotal:   quote.PizzaSubtotal,
		ExtrasSubtotal:  quote.ExtrasSubtotal,
		Total:           quote.Total,
		Extras:          quote.Extras,
		Postcode:        delivery.Postcode,
		Email:           delivery.Email,
	})

	persisted := make([]orderdomain.Extra, 0, len(quote.Extras))
	for _, line := range quote.Extras {
		persisted = append(persisted, orderdomain.Extra{
			Category: line.Category,
			Name:     line.Name,
			Price:    line.Price,
		})
	}
	placed, err := k.orders.Place(ctx, orderdomain.Order{
		PizzaType:       pizza.Name,
		OrderType:       string(quote.Mode),
		Quantity:        quote.Quantity,
		TotalPrice:      quote.Total,
		DiscountApplied: quote.DiscountApplied,
		Extras:          persisted,
	})
	if err != nil {
		return fmt.Errorf("record order: %w", err)
	}

	log.Info("order placed",
		slog.Int("order_number", orderNumber),
		slog.String("order_type", placed.OrderType),
		slog.Int("quantity", placed.Quantity),
		slog.Int64("total_cents", placed.TotalPrice),
		slog.String("delivery_type", delivery.Type),
	)
	return nil
}

func (k *Kiosk) promptMode() (checkoutdomain.Mode, bool, error) {
	for {
		choice, err := k.readLine("Select 'B' for Box or 'S' for Slice (or 'q' to cancel): ")
		if err != nil {
			return "", false, err
		}
		switch strings.ToUpper(choice) {
		case "B":
			return checkoutdomain.ModeBox, true, nil
		case "S":
			return checkoutdomain.ModeSlice, true, nil
		case "Q":
			fmt.Fprintln(k.out, "Order Cancelled!")
			return "", false, nil
		default:
			fmt.Fprintln(k.out, "Select either B, S or Q.")
		}
	}
}

func (k *Kiosk) promptQuantity(mode checkoutdomain.Mode) (int, bool, error) {
	prompt := "How many Box(es) do you want? (or type 'q' to cancel): "
	cancelled := "Box Order Cancelled"
	if mode == checkoutdomain.ModeSlice {
		prompt = "How many slices do you want? (or type 'q' to cancel): "
		cancelled = "Slice Order Cancelled"
	}

	for {
		in, err := k.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		if strings.ToLower(in) == "q" {
			fmt.Fprintln(k.out, cancelled)
			return 0, false, nil
		}

		n, err := strconv.Atoi(in)
		if err != nil || n < 1 {
			fmt.Fprintln(k.out, "Please enter a valid number.")
			continue
		}
		if mode == checkoutdomain.ModeSlice && n > checkoutapp.MaxSlicesPerOrder {
			fmt.Fprintf(k.out, "Maximum of %d slices per order. Please try again.\n", checkoutapp.MaxSlicesPerOrder)
			continue
		}
		return n, true, nil
	}
}

func (k *Kiosk) readLine(prompt string) (string, error) {
	fmt.Fprint(k.out, prompt)
	if !k.in.Scan() {
		if err := k.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(k.in.Text()), nil
}

func (k *Kiosk) closeOut(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
