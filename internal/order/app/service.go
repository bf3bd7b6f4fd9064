package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rushmorepizza/kiosk/internal/order/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	log OrderLog
	now func() time.Time
}

func NewService(log OrderLog, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{log: log, now: now}
}

// Place stamps the order with the current time and appends it to the
// log. The draft's PlacedAt is overwritten.
func (s *Service) Place(ctx context.Context, order domain.Order) (domain.Order, error) {
	if strings.TrimSpace(order.PizzaType) == "" {
		return domain.Order{}, fmt.Errorf("%w: pizza type is empty", ErrInvalidInput)
	}
	if order.OrderType != domain.OrderTypeBox && order.OrderType != domain.OrderTypeSlice {
		return domain.Order{}, fmt.Errorf("%w: unknown order type %q", ErrInvalidInput, order.OrderType)
	}
	if order.Quantity < 1 {
		return domain.Order{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, order.Quantity)
	}
	if order.TotalPrice < 0 {
		return domain.Order{}, fmt.Errorf("%w: total price cannot be negative, got %d", ErrInvalidInput, order.TotalPrice)
	}

	order.PlacedAt = s.now()
	if err := s.log.Append(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// List returns every order recorded so far.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.log.List(ctx)
}
