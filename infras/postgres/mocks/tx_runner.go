package mocks

import (
	"context"

	"zenstay/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type txRunnerStub struct {
}

// RunInTx implements postgres.TxRunner. The callback runs with a nil
// transaction, which is fine when the repositories are mocked.
func (t *txRunnerStub) RunInTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTxRunner() postgres.TxRunner {
	return &txRunnerStub{}
}
