package postgres

import (
	"context"
	"fmt"

	"hoteloncall/shared/logger"

	"github.com/jmoiron/sqlx"
)

//go:generate go run go.uber.org/mock/mockgen -source=tx.go -destination=mock/tx.go -package=postgres_mock

// TxRunner runs a function inside a database transaction, committing when the
// function returns nil and rolling back otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	sqltx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(sqltx); err != nil {
		if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
			logger.ErrorWithStack(rollbackErr)
		}

		return err
	}

	if err := sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
