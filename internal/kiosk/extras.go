package kiosk

import (
	"errors"
	"fmt"
	"strings"

	checkoutdomain "github.com/rushmorepizza/kiosk/internal/checkout/domain"
	menuapp "github.com/rushmorepizza/kiosk/internal/menu/app"
)

// promptFullMeal asks the yes/no full-meal question, looping until the
// answer is recognizable, then runs the extras selector on a yes.
func (k *Kiosk) promptFullMeal() ([]checkoutdomain.Line, error) {
	for {
		resp, err := k.readLine("\nWould you like to make it a full meal with sides, drinks, or dessert? (yes/no or y/n): ")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(resp) {
		case "yes", "y":
			return k.selectExtras()
		case "no", "n":
			return nil, nil
		default:
			fmt.Fprintln(k.out, "Invalid input. Please type yes/y or no/n.")
		}
	}
}

// selectExtras walks the categories once, taking at most one item per
// category. Blank input skips a category; an unknown name re-prompts
// within it.
func (k *Kiosk) selectExtras() ([]checkoutdomain.Line, error) {
	fmt.Fprintln(k.out, "\nWould you like any extras like sides, toppings, etc. with your order?")

	var lines []checkoutdomain.Line
	for _, cat := range k.menu.ExtraCategories() {
		fmt.Fprintf(k.out, "\n%s options:\n", capitalize(cat.Name))
		for _, it := range cat.Items {
			fmt.Fprintf(k.out, " - %s: %s\n", it.Name, it.Price)
		}

		for {
			choice, err := k.readLine(fmt.Sprintf("Select a %s by name (or press Enter to skip): ", cat.Name))
			if err != nil {
				return nil, err
			}
			if choice == "" {
				break
			}

			item, err := k.menu.FindExtra(cat.Name, choice)
			if errors.Is(err, menuapp.ErrNotFound) {
				fmt.Fprintln(k.out, "Invalid item. Please enter the name exactly as shown.")
				continue
			}
			if err != nil {
				return nil, err
			}

			lines = append(lines, checkoutdomain.Line{
				Category: cat.Name,
				Name:     item.Name,
				Price:    int64(item.Price),
			})
			fmt.Fprintf(k.out, "> %s added.\n", item.Name)
			break
		}
	}
	return lines, nil
}
