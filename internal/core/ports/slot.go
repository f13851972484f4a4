package ports

import "context"

// Slot is a named key/value cell in the persisted store. Get returns
// domain.ErrSlotEmpty when nothing has been written under key.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Pinger is implemented by slot backends that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
