package domain

import (
	"context"
	"encoding/json"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Category(ctx context.Context, in CategoryInput) (Timeline, error)
	Weekly(ctx context.Context, in WeeklyInput) (Timeline, error)
	Slice(ctx context.Context, in SliceInput) (json.RawMessage, error)
}
