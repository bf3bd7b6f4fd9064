package app

import (
	"context"

	"github.com/rushmorepizza/kiosk/internal/order/domain"
)

type OrderLog interface {
	Append(ctx context.Context, order domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
}
