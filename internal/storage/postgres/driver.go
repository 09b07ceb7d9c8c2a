package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/akashipov/brcode/internal/pix"
	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed queries/init.sql
var initQuery string

const uniqueViolation = pq.ErrorCode("23505")

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type SqlWorker struct {
	DB  *sql.DB
	Log *zap.SugaredLogger
}

var _ storage.Storage = (*SqlWorker)(nil)

func NewSqlWorker(ctx context.Context, dsn string, log *zap.SugaredLogger) (*SqlWorker, error) {
	DB, err := InitDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("Problem with init DB -> %w", err)
	}
	return &SqlWorker{DB: DB, Log: log}, nil
}

func InitDB(ctx context.Context, dsn string) (*sql.DB, error) {
	DB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Problem with opening DB: %w", err)
	}
	err = DB.PingContext(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("Problem with pinging DB: %w", err), DB.Close())
	}
	return DB, nil
}

func (w *SqlWorker) CreateDefaultTables(ctx context.Context) error {
	_, err := w.DB.ExecContext(ctx, initQuery)
	if err != nil {
		return fmt.Errorf("Problem with execution of init query: %w", err)
	}
	return nil
}

func (w *SqlWorker) Close() error {
	return w.DB.Close()
}

func (w *SqlWorker) q(tx *sql.Tx) querier {
	if tx == nil {
		return w.DB
	}
	return tx
}

func (w *SqlWorker) AddCharge(ctx context.Context, ch *charge.Charge) error {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Problem with creating TX: %w", err)
	}
	err = w.insertCharge(ctx, tx, ch)
	if err == nil {
		err = w.AddChargeHistory(ctx, tx, ch.ID, ch.CreatedAt)
	}
	if err != nil {
		return errors.Join(err, tx.Rollback())
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("Problem with commit of Add Charge: %w", err)
	}
	w.Log.Infof("Charge '%s' with transaction id '%s' was added successfully", ch.ID, ch.TransactionID)
	return nil
}

func (w *SqlWorker) insertCharge(ctx context.Context, tx *sql.Tx, ch *charge.Charge) error {
	query := "INSERT INTO charges(charge_id, transaction_id, payee_key, name, city, amount, " +
		"note, payload, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	_, err := w.q(tx).ExecContext(
		ctx, query, ch.ID, ch.TransactionID, ch.PayeeKey, ch.Name, ch.City,
		ch.Amount, ch.Note, ch.Payload, ch.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("charge '%s': %w", ch.ID, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("Problem with execution of Add Charge query: %w", err)
	}
	return nil
}

// AddChargeHistory records that the charge was touched at t. Recently
// touched charges are the ones loaded into the cache on start.
func (w *SqlWorker) AddChargeHistory(ctx context.Context, tx *sql.Tx, chargeID string, t time.Time) error {
	query := "INSERT INTO history(charge_id, triggered_at) VALUES($1, $2) " +
		"ON CONFLICT (charge_id) DO UPDATE SET triggered_at = $2"
	_, err := w.q(tx).ExecContext(ctx, query, chargeID, t)
	if err != nil {
		return fmt.Errorf("Problem with execution of Add Charge History query: %w", err)
	}
	return nil
}

func (w *SqlWorker) TouchCharge(ctx context.Context, id string, t time.Time) error {
	return w.AddChargeHistory(ctx, nil, id, t)
}

func (w *SqlWorker) GetChargeByID(ctx context.Context, id string) (*charge.Charge, error) {
	query := "SELECT charge_id, transaction_id, payee_key, name, city, amount, note, " +
		"payload, created_at FROM charges WHERE charge_id = $1"
	var ch charge.Charge
	err := w.DB.QueryRowContext(ctx, query, id).Scan(
		&ch.ID, &ch.TransactionID, &ch.PayeeKey, &ch.Name, &ch.City,
		&ch.Amount, &ch.Note, &ch.Payload, &ch.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Problem with execution of Get Charge By ID scan: %w", err)
	}
	ch.CreatedAt = ch.CreatedAt.UTC()
	ch.AmountDisplay = pix.FormatBRL(ch.Amount)
	return &ch, nil
}

func (w *SqlWorker) GetRecentChargeIDs(ctx context.Context, limit int) ([]string, error) {
	query := "SELECT charge_id FROM history ORDER BY triggered_at DESC LIMIT $1"
	rows, err := w.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("Problem with execution of Get History query: %w", err)
	}
	defer rows.Close()
	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		err = rows.Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("Problem with Scan Id history block: %w", err)
		}
		ids = append(ids, id)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("Problem with history rows: %w", err)
	}
	return ids, nil
}

func (w *SqlWorker) DeleteChargeByID(ctx context.Context, id string) error {
	query := "DELETE FROM charges WHERE charge_id = $1"
	res, err := w.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Problem with execution of Delete Charge By ID: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Problem with rows affected of Delete Charge By ID: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("charge '%s': %w", id, storage.ErrNotFound)
	}
	return nil
}
