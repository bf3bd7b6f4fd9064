package app

import (
	"context"

	"github.com/rushmorepizza/kiosk/internal/customer/domain"
)

type ProfileStore interface {
	// Load reports ok=false when no profile has been saved yet.
	Load(ctx context.Context) (profile domain.Profile, ok bool, err error)
	Save(ctx context.Context, profile domain.Profile) error
}
