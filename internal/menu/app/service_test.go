package app

import (
	"errors"
	"testing"

	"github.com/rushmorepizza/kiosk/internal/menu/domain"
)

type fakeRepo struct{}

func (fakeRepo) Pizzas() []domain.Pizza {
	return []domain.Pizza{
		{Code: "1", Name: "Classic", BoxPrice: 340},
		{Code: "2", Name: "Chicken", BoxPrice: 450},
	}
}

func (fakeRepo) ExtraCategories() []domain.ExtraCategory {
	return []domain.ExtraCategory{
		{Name: "sides", Items: []domain.Extra{{Name: "Fries", Price: 150}}},
		{Name: "dips", Items: []domain.Extra{{Name: "BBQ", Price: 50}}},
	}
}

func TestFindPizza(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("known code", func(t *testing.T) {
		p, err := svc.FindPizza("2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Chicken" {
			t.Fatalf("got %q, want Chicken", p.Name)
		}
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		if _, err := svc.FindPizza("  1  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown code -> not found", func(t *testing.T) {
		_, err := svc.FindPizza("X")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFindExtra(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("case-insensitive match returns canonical name", func(t *testing.T) {
		it, err := svc.FindExtra("sides", "fRiEs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Name != "Fries" || it.Price != 150 {
			t.Fatalf("got %+v", it)
		}
	})

	t.Run("unknown item -> not found", func(t *testing.T) {
		_, err := svc.FindExtra("sides", "Onion Rings")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("item from another category does not match", func(t *testing.T) {
		_, err := svc.FindExtra("dips", "Fries")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown category -> not found", func(t *testing.T) {
		_, err := svc.FindExtra("starters", "Fries")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
