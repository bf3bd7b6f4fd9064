// Package jsonfile persists the delivery profile as one JSON object,
// fully overwritten on each save.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/rushmorepizza/kiosk/internal/customer/domain"
)

type profileRecord struct {
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Email    string `json:"email"`
}

type ProfileStore struct {
	path string

	mu sync.Mutex
}

func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// Load reports ok=false when the file is missing or unreadable as a
// profile, so the kiosk simply asks for fresh details.
func (s *ProfileStore) Load(ctx context.Context) (domain.Profile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("read profile: %w", err)
	}

	var r profileRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return domain.Profile{}, false, nil
	}
	return domain.Profile{
		Address:  r.Address,
		Postcode: r.Postcode,
		Email:    r.Email,
	}, true, nil
}

func (s *ProfileStore) Save(ctx context.Context, p domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(profileRecord{
		Address:  p.Address,
		Postcode: p.Postcode,
		Email:    p.Email,
	}, "", "    ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
