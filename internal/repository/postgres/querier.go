package postgres

import (
	"context"
	"database/sql"
)

// querier - общее у sql.DB и sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// querier возвращает транзакцию из контекста, если она открыта, иначе пул соединений
func (p *PostgresStorage) querier(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyTxValue).(*sql.Tx); ok {
		return tx
	}
	return p.db
}
