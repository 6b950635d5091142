// Package kvstore defines the key-value document store every content manager
// persists through. A store holds one JSON document per key and knows nothing
// about the shape of the documents.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

type LoadStatus string

const (
	// StatusFound: the key exists and holds well-formed JSON.
	StatusFound LoadStatus = "found"
	// StatusEmpty: nothing has been stored under the key yet.
	StatusEmpty LoadStatus = "empty"
	// StatusCorrupt: the key exists but the bytes are not valid JSON.
	StatusCorrupt LoadStatus = "corrupt"
)

// LoadResult never carries a parse error; malformed content is reported as
// StatusCorrupt with the raw bytes attached so callers can keep a copy.
type LoadResult struct {
	Status LoadStatus
	Value  []byte
}

func Found(value []byte) LoadResult {
	return LoadResult{Status: StatusFound, Value: value}
}

func Empty() LoadResult {
	return LoadResult{Status: StatusEmpty}
}

func Corrupt(value []byte) LoadResult {
	return LoadResult{Status: StatusCorrupt, Value: value}
}

// Classify turns raw stored bytes into a LoadResult.
func Classify(value []byte) LoadResult {
	if len(value) == 0 {
		return Empty()
	}
	if !json.Valid(value) {
		return Corrupt(value)
	}
	return Found(value)
}

var ErrStoreUnavailable = errors.New("store unavailable")

// Store is implemented by the memory, SQLite, Postgres and Redis adapters.
// Load only returns an error when the backend itself cannot be reached.
type Store interface {
	Load(ctx context.Context, key string) (LoadResult, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
