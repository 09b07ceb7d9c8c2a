package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Start connects to the database named by DATABASE_DSN and skips the test
// when it is not set.
func Start(ctx context.Context, t *testing.T) *SqlWorker {
	t.Helper()
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("DATABASE_DSN is not set")
	}
	w, err := NewSqlWorker(ctx, dsn, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	require.NoError(t, w.CreateDefaultTables(ctx))
	t.Cleanup(func() { w.Close() })
	return w
}

func newCharge(t *testing.T, txid string) *charge.Charge {
	t.Helper()
	ch, err := charge.NewCharge(charge.ChargeRequest{
		Amount:        decimal.RequireFromString("350.00"),
		TransactionID: txid,
		Note:          "Cota Lua de Mel",
	}, charge.Beneficiary{PayeeKey: "noivos@email.com", Name: "Gabriel e Milleny", City: "Curitiba"},
		time.Now().Truncate(time.Millisecond))
	require.NoError(t, err)
	return ch
}

func TestSqlWorker_AddCharge(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	w := Start(ctx, t)

	ch := newCharge(t, "GIFT43")
	defer w.DeleteChargeByID(ctx, ch.ID)

	tests := []struct {
		name    string
		wantErr error
	}{
		{name: "common_case"},
		{name: "common_again", wantErr: storage.ErrAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.AddCharge(ctx, ch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := w.GetChargeByID(ctx, ch.ID)
			require.NoError(t, err)
			assert.Equal(t, ch.Payload, got.Payload)
			assert.Equal(t, ch.TransactionID, got.TransactionID)
			assert.Equal(t, ch.PayeeKey, got.PayeeKey)
			assert.Equal(t, ch.Name, got.Name)
			assert.Equal(t, ch.City, got.City)
			assert.Equal(t, "R$ 350,00", got.AmountDisplay)
			assert.Equal(t, ch.AmountDisplay, got.AmountDisplay)
			assert.Equal(t, ch.Note, got.Note)
			assert.True(t, ch.Amount.Equal(got.Amount))
			assert.True(t, ch.CreatedAt.Equal(got.CreatedAt))
		})
	}
}

func TestSqlWorker_History(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	w := Start(ctx, t)

	first, second := newCharge(t, "GIFT1"), newCharge(t, "GIFT2")
	for _, ch := range []*charge.Charge{first, second} {
		require.NoError(t, w.AddCharge(ctx, ch))
		defer w.DeleteChargeByID(ctx, ch.ID)
	}
	require.NoError(t, w.TouchCharge(ctx, first.ID, time.Now().Add(time.Hour)))

	ids, err := w.GetRecentChargeIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, ids)
}

func TestSqlWorker_NotFound(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	w := Start(ctx, t)

	_, err := w.GetChargeByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	err = w.DeleteChargeByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
