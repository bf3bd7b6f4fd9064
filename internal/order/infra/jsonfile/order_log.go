// Package jsonfile persists the order log as a single JSON array,
// rewritten in full on every append.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rushmorepizza/kiosk/internal/order/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// cents serializes an amount of cents as a two-decimal JSON number.
type cents int64

func (c cents) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "%d.%02d", c/100, c%100), nil
}

func (c *cents) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*c = cents(math.Round(f * 100))
	return nil
}

type extraRecord struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    cents  `json:"price"`
}

type orderRecord struct {
	OrderDatetime   string        `json:"order_datetime"`
	PizzaType       string        `json:"pizza_type"`
	OrderType       string        `json:"order_type"`
	Quantity        int           `json:"quantity"`
	TotalPrice      cents         `json:"total_price"`
	DiscountApplied bool          `json:"discount_applied"`
	Extras          []extraRecord `json:"extras"`
}

type OrderLog struct {
	path string

	mu sync.Mutex
}

func NewOrderLog(path string) *OrderLog {
	return &OrderLog{path: path}
}

// Append rewrites the whole file with the new order added. A missing,
// empty, or unparsable file is treated as an empty log.
func (s *OrderLog) Append(ctx context.Context, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	records = append(records, toRecord(order))

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode order log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write order log: %w", err)
	}
	return nil
}

// List returns the recorded orders, oldest first.
func (s *OrderLog) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, fromRecord(r))
	}
	return orders, nil
}

func (s *OrderLog) read() ([]orderRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read order log: %w", err)
	}

	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt or empty content starts a fresh log.
		return nil, nil
	}
	return records, nil
}

func toRecord(order domain.Order) orderRecord {
	extras := make([]extraRecord, 0, len(order.Extras))
	for _, e := range order.Extras {
		extras = append(extras, extraRecord{
			Category: e.Category,
			Name:     e.Name,
			Price:    cents(e.Price),
		})
	}
	return orderRecord{
		OrderDatetime:   order.PlacedAt.Format(timeLayout),
		PizzaType:       order.PizzaType,
		OrderType:       order.OrderType,
		Quantity:        order.Quantity,
		TotalPrice:      cents(order.TotalPrice),
		DiscountApplied: order.DiscountApplied,
		Extras:          extras,
	}
}

func fromRecord(r orderRecord) domain.Order {
	placedAt, err := time.ParseInLocation(timeLayout, r.OrderDatetime, time.Local)
	if err != nil {
		placedAt = time.Time{}
	}

	extras := make([]domain.Extra, 0, len(r.Extras))
	for _, e := range r.Extras {
		extras = append(extras, domain.Extra{
			Category: e.Category,
			Name:     e.Name,
			Price:    int64(e.Price),
		})
	}
	return domain.Order{
		PlacedAt:        placedAt,
		PizzaType:       r.PizzaType,
		OrderType:       r.OrderType,
		Quantity:        r.Quantity,
		TotalPrice:      int64(r.TotalPrice),
		DiscountApplied: r.DiscountApplied,
		Extras:          extras,
	}
}
