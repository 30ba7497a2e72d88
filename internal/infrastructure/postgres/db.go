package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier subconjunto de pgx que satisfacen tanto *pgxpool.Pool como pgx.Tx.
// Permite que los repositorios ejecuten sus consultas contra el pool o
// dentro de una transacción sin cambiar de código.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB conexión capaz de abrir transacciones. *pgxpool.Pool la satisface.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
