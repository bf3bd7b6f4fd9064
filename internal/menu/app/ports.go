package app

import "github.com/rushmorepizza/kiosk/internal/menu/domain"

type MenuRepo interface {
	Pizzas() []domain.Pizza
	ExtraCategories() []domain.ExtraCategory
}
