package mocks

import (
	"context"

	"hoteloncall/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type txRunner struct{}

// WithTx runs fn with a nil transaction. Repository calls inside fn are
// expected to be mocked, so the handle is never dereferenced.
func (txRunner) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return txRunner{}
}
