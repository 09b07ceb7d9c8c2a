package storage

import (
	"context"
	"errors"
	"time"

	"github.com/akashipov/brcode/internal/storage/charge"
)

var (
	ErrNotFound      = errors.New("charge not found")
	ErrAlreadyExists = errors.New("charge already exists")
)

// Storage keeps issued charges.
type Storage interface {
	AddCharge(ctx context.Context, ch *charge.Charge) error
	GetChargeByID(ctx context.Context, id string) (*charge.Charge, error)
	TouchCharge(ctx context.Context, id string, t time.Time) error
	GetRecentChargeIDs(ctx context.Context, limit int) ([]string, error)
	DeleteChargeByID(ctx context.Context, id string) error
}
