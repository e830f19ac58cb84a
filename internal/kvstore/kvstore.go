// Package kvstore is the local persistent key-value storage collaborator.
// It outlives the process (a reload of the client picks the values back
// up) but is never shared across devices.
package kvstore

import (
	"context"
	"errors"
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrKeyNotFound = errors.New("key not found")
