package db

import (
	"context"

	"topup-backend-go/internal/models"
)

// StatusRepository defines the interface for the singleton store-status
// document.
type StatusRepository interface {
	// Get reads the current status once. A missing document returns
	// ErrNotFound; callers apply fail-open semantics themselves.
	Get(ctx context.Context) (models.StoreStatus, error)

	// Watch opens a live subscription to the status document. Every snapshot
	// (including the initial one) is delivered as a StatusEvent. A stream
	// error is delivered as an event first, so the consumer can keep its
	// fail-open state current, then the channel closes. The channel also
	// closes when ctx ends.
	Watch(ctx context.Context) (<-chan StatusEvent, error)

	// SetOpen merge-upserts {open, updatedAt: server time} into the document.
	SetOpen(ctx context.Context, open bool) error
}

// StatusEvent is one observation from the live status subscription. Exactly
// one of the three shapes applies: a document (Status valid), a missing
// document (Missing true), or a stream error (Err non-nil).
type StatusEvent struct {
	Status  models.StoreStatus
	Missing bool
	Err     error
}
