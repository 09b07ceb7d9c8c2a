// Package charges issues PIX charges and serves them back, keeping the
// storage and the cache in step.
package charges

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/cache"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	Storage  storage.Storage
	Cache    *cache.Cache
	Defaults charge.Beneficiary
	Log      *zap.SugaredLogger
	Now      func() time.Time
}

func NewService(st storage.Storage, c *cache.Cache, defaults charge.Beneficiary, log *zap.SugaredLogger) *Service {
	return &Service{
		Storage:  st,
		Cache:    c,
		Defaults: defaults,
		Log:      log,
		Now:      time.Now,
	}
}

// Issue builds a charge for req, stores it and returns it with its JSON
// rendering.
func (s *Service) Issue(ctx context.Context, req charge.ChargeRequest) (*charge.Charge, []byte, error) {
	ch, err := charge.NewCharge(req, s.Defaults, s.Now())
	if err != nil {
		return nil, nil, err
	}
	err = s.Storage.AddCharge(ctx, ch)
	if err != nil {
		return nil, nil, fmt.Errorf("Problem with storing charge: %w", err)
	}
	data, err := json.Marshal(ch)
	if err != nil {
		return nil, nil, fmt.Errorf("Problem with charge json: %w", err)
	}
	s.Cache.Add(ch.ID, data)
	s.Log.Infof("Charge '%s' issued for %s", ch.ID, ch.AmountDisplay)
	return ch, data, nil
}

// Get returns the JSON of the charge with the given id, from the cache when
// possible.
func (s *Service) Get(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	data, ok := s.Cache.Get(id)
	if !ok {
		ch, err := s.Storage.GetChargeByID(ctx, id)
		if err != nil {
			return nil, err
		}
		data, err = json.Marshal(ch)
		if err != nil {
			return nil, fmt.Errorf("Problem with charge json: %w", err)
		}
	}
	s.Cache.Add(id, data)
	err := s.Storage.TouchCharge(ctx, id, s.Now())
	if err != nil {
		s.Log.Infof("Problem with charge history: %s", err.Error())
	}
	return data, nil
}
