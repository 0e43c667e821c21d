package ports

import "context"

// Storage is a minimal key/value blob store. The session cache keeps its
// whole collection as one JSON array under one key, so the interface
// deliberately offers nothing below whole-value reads and writes.
// Read returns (nil, nil) when the key is absent.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}
