// Package kvstore is the string-keyed, string-valued persistent store that
// repositories read and write whole collections through.
package kvstore

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when an operation is given a blank key.
var ErrEmptyKey = errors.New("kvstore: key is required")

// Store is the minimal key-value contract. Get reports absence with ok=false
// rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Batcher is implemented by stores that can apply several operations as one
// unit: either every operation is visible afterwards or none is.
type Batcher interface {
	Apply(ctx context.Context, ops ...Op) error
}

// Op is a single mutation inside a batch.
type Op struct {
	Key    string
	Value  string
	Delete bool
}

func SetOp(key, value string) Op {
	return Op{Key: key, Value: value}
}

func RemoveOp(key string) Op {
	return Op{Key: key, Delete: true}
}

func validateOps(ops []Op) error {
	for _, op := range ops {
		if op.Key == "" {
			return ErrEmptyKey
		}
	}
	return nil
}
