package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/logger"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise. Nested calls
// join the transaction already stored in ctx.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type contextKey struct{}

var txKey = contextKey{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext returns the transaction stored by WithinTx, or nil.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Executor picks the transaction in ctx when there is one, the pool otherwise.
func Executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
