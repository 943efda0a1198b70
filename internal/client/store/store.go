// Package store is the local session store: a key/value table of text values
// kept in SQLite. Every write is a single upsert; callers that must change
// several keys together use WithTx.
package store

import "context"

// Store reads and writes text values by key. Get reports absent keys with
// ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// TxStore is a Store that can group writes. The Store passed to fn must be
// used for every read and write inside the transaction.
type TxStore interface {
	Store
	WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
