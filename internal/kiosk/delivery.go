package kiosk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	customerdomain "github.com/rushmorepizza/kiosk/internal/customer/domain"
)

// deliveryInfo is what the delivery handler hands back to the session.
// Takeout carries no address data at all.
type deliveryInfo struct {
	Type     string
	Address  string
	Postcode string
	Email    string
}

const (
	deliveryTypeTakeout  = "Takeout"
	deliveryTypeDelivery = "Delivery"
)

// handleDelivery loops on the T/D prompt until a recognizable answer
// arrives.
func (k *Kiosk) handleDelivery(ctx context.Context, log *slog.Logger) (deliveryInfo, error) {
	for {
		mode, err := k.readLine("\nIs this order for Takeout or Delivery? (T/D): ")
		if err != nil {
			return deliveryInfo{}, err
		}
		switch strings.ToUpper(mode) {
		case "T":
			fmt.Fprintln(k.out, "Your order will be ready for pickup shortly!")
			return deliveryInfo{Type: deliveryTypeTakeout}, nil
		case "D":
			return k.collectDeliveryDetails(ctx, log)
		default:
			fmt.Fprintln(k.out, "Please choose 'T' for Takeout or 'D' for Delivery")
		}
	}
}

// collectDeliveryDetails offers the saved profile when one exists;
// otherwise it prompts for all three fields and saves them as the new
// profile. Reuse is all-or-nothing.
func (k *Kiosk) collectDeliveryDetails(ctx context.Context, log *slog.Logger) (deliveryInfo, error) {
	saved, ok, err := k.profiles.Load(ctx)
	if err != nil {
		log.Warn("loading delivery profile failed", slog.Any("err", err))
		ok = false
	}

	useSaved := false
	if ok {
		fmt.Fprintf(k.out, "\nWe found saved delivery info:\n - Address: %s\n - Postcode: %s\n - Email: %s\n",
			saved.Address, saved.Postcode, saved.Email)
		resp, err := k.readLine("Use saved info? (Y/N): ")
		if err != nil {
			return deliveryInfo{}, err
		}
		switch strings.ToLower(resp) {
		case "y", "yes":
			useSaved = true
		}
	}

	profile := saved
	if !useSaved {
		address, err := k.promptRequired("Please input your delivery address: ")
		if err != nil {
			return deliveryInfo{}, err
		}
		postcode, err := k.promptRequired("Please input your postcode: ")
		if err != nil {
			return deliveryInfo{}, err
		}
		email, err := k.promptRequired("Please input your email address for the receipt: ")
		if err != nil {
			return deliveryInfo{}, err
		}

		profile = customerdomain.Profile{Address: address, Postcode: postcode, Email: email}
		if err := k.profiles.Save(ctx, profile); err != nil {
			log.Warn("saving delivery profile failed", slog.Any("err", err))
		} else {
			log.Info("delivery profile saved")
		}
	}

	eta := 15 + k.rng.Intn(31)
	fmt.Fprintf(k.out, "Estimated time of delivery to %s is %d minutes\n", profile.Address, eta)

	return deliveryInfo{
		Type:     deliveryTypeDelivery,
		Address:  profile.Address,
		Postcode: profile.Postcode,
		Email:    profile.Email,
	}, nil
}

// promptRequired loops until the customer types something non-blank.
func (k *Kiosk) promptRequired(prompt string) (string, error) {
	for {
		v, err := k.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		fmt.Fprintln(k.out, "This field cannot be blank. Please try again.")
	}
}
