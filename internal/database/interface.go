package database

import "context"

// Store is a string key/value store. Get reports ok=false for absent keys.
//
//go:generate mockgen -source=interface.go -destination=../mocks/mock_store.go -package=mocks
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var (
	_ Store = (*Database)(nil)
	_ Store = (*MemoryStore)(nil)
)
