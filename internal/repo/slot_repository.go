package repo

import (
	"context"
	"errors"
)

// SlotStore persists single string values under named keys.
type SlotStore interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// ErrSlotEmpty is returned when nothing has been saved under a key yet.
var ErrSlotEmpty = errors.New("slot is empty")
