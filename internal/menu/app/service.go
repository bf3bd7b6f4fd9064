package app

import (
	"errors"
	"strings"

	"github.com/rushmorepizza/kiosk/internal/menu/domain"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	repo MenuRepo
}

func NewService(repo MenuRepo) *Service {
	return &Service{repo: repo}
}

// Pizzas lists the catalog in menu order.
func (s *Service) Pizzas() []domain.Pizza {
	return s.repo.Pizzas()
}

// FindPizza resolves a menu code to its entry.
func (s *Service) FindPizza(code string) (domain.Pizza, error) {
	code = strings.TrimSpace(code)
	for _, p := range s.repo.Pizzas() {
		if p.Code == code {
			return p, nil
		}
	}
	return domain.Pizza{}, ErrNotFound
}

// ExtraCategories lists the add-on categories in the order the kiosk
// walks them.
func (s *Service) ExtraCategories() []domain.ExtraCategory {
	return s.repo.ExtraCategories()
}

// FindExtra matches an item inside a category by name, case
// insensitively, and returns it with its canonical spelling.
func (s *Service) FindExtra(category, name string) (domain.Extra, error) {
	name = strings.TrimSpace(name)
	for _, c := range s.repo.ExtraCategories() {
		if c.Name != category {
			continue
		}
		for _, it := range c.Items {
			if strings.EqualFold(it.Name, name) {
				return it, nil
			}
		}
		return domain.Extra{}, ErrNotFound
	}
	return domain.Extra{}, ErrNotFound
}
