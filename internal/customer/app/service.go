package app

import (
	"context"
	"errors"
	"strings"

	"github.com/rushmorepizza/kiosk/internal/customer/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	store ProfileStore
}

func NewService(store ProfileStore) *Service {
	return &Service{store: store}
}

func (s *Service) Load(ctx context.Context) (domain.Profile, bool, error) {
	return s.store.Load(ctx)
}

// Save replaces the stored profile. All three fields are required;
// there is no partial update.
func (s *Service) Save(ctx context.Context, p domain.Profile) error {
	p.Address = strings.TrimSpace(p.Address)
	p.Postcode = strings.TrimSpace(p.Postcode)
	p.Email = strings.TrimSpace(p.Email)

	if p.Address == "" || p.Postcode == "" || p.Email == "" {
		return ErrInvalidInput
	}
	return s.store.Save(ctx, p)
}
