package memory

import (
	"context"
	"testing"
	"time"

	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now()
	a := &charge.Charge{ID: "a", Payload: "pa", CreatedAt: now}
	b := &charge.Charge{ID: "b", Payload: "pb", CreatedAt: now.Add(time.Second)}

	require.NoError(t, s.AddCharge(ctx, a))
	require.NoError(t, s.AddCharge(ctx, b))
	assert.ErrorIs(t, s.AddCharge(ctx, a), storage.ErrAlreadyExists)

	ids, err := s.GetRecentChargeIDs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)

	require.NoError(t, s.TouchCharge(ctx, "a", now.Add(time.Minute)))
	ids, err = s.GetRecentChargeIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)

	got, err := s.GetChargeByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "pb", got.Payload)

	require.NoError(t, s.DeleteChargeByID(ctx, "b"))
	_, err = s.GetChargeByID(ctx, "b")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteChargeByID(ctx, "b"), storage.ErrNotFound)
	assert.ErrorIs(t, s.TouchCharge(ctx, "b", now), storage.ErrNotFound)
}

func TestStorage_GetRecentChargeIDsLimit(t *testing.T) {
	ctx := context.Background()
	s := New()

	ids, err := s.GetRecentChargeIDs(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.AddCharge(ctx, &charge.Charge{ID: "a", CreatedAt: time.Now()}))
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "negative", limit: -1, want: 1},
		{name: "zero", limit: 0, want: 0},
		{name: "above_len", limit: 5, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := s.GetRecentChargeIDs(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, ids, tt.want)
		})
	}
}
