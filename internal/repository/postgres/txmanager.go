package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type keyTxType int

const (
	keyTxValue keyTxType = iota
)

// WithinTx выполняет fn в транзакции; вложенный вызов переиспользует уже открытую.
// Read committed: дедуп кликов держится на уникальном индексе, а serializable
// превращал бы конкурентный ON CONFLICT DO NOTHING в ошибки сериализации.
func (p *PostgresStorage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(keyTxValue).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", classifyError(err))
	}

	ctx = context.WithValue(ctx, keyTxValue, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", classifyError(commitErr))
		}
	}()

	err = fn(ctx)
	return
}
