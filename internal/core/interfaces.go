package core

import (
	"context"

	"topup-backend-go/internal/models"
)

// StatusService owns the store-open flag. It is the only writer of that
// state: the watch loop folds every remote snapshot (and every stream error,
// fail-open) into it, and subscribers observe each change.
type StatusService interface {
	// Run consumes the live status subscription until ctx ends.
	Run(ctx context.Context) error
	// Current returns the last observed status.
	Current() models.StoreStatus
	// Subscribe registers fn, invokes it immediately with the current status,
	// and returns a handle that unregisters it.
	Subscribe(fn func(models.StoreStatus)) (unsubscribe func())
	// SetOpen writes the flag. The session is checked synchronously; a
	// non-admin session is rejected with ErrAccessDenied before any call to
	// the backing store.
	SetOpen(ctx context.Context, session models.Session, open bool) error
}

// AccessService authenticates exactly one identity as admin.
type AccessService interface {
	// ResolveSession derives the session for an authenticated identity.
	// A non-admin identity is force-signed-out (refresh tokens revoked,
	// best-effort) and rejected with ErrNotAdmin.
	ResolveSession(ctx context.Context, userID, email string) (models.Session, error)
}

// OrderService validates order drafts and dispatches them to the messaging
// endpoint.
type OrderService interface {
	// Submit runs the ordered validation chain and, on success, dispatches
	// the sanitized order text exactly once.
	Submit(ctx context.Context, req models.SubmitOrderRequest) (*OrderResult, error)
	// CardFill maps a price card's data attributes onto form field values.
	CardFill(req models.CardFillRequest) CardFillResult
	// Rules projects the two linked OTP controls onto the dependent fields.
	Rules(mode models.OTPMode, method models.OTPMethod) models.FieldRules
}

// PaymentService computes per-method totals for the payment popup.
type PaymentService interface {
	// Popup builds the popup state for a price label, defaulting to QRIS.
	Popup(harga string) models.PopupState
	// Quote rebuilds the popup with the given method selected.
	Quote(harga string, method models.PaymentMethodKey) (models.PopupState, error)
}

// Dispatcher is the outbound message path (implemented by the Telegram
// client). Fire-and-forget: one call per submission, no retry.
type Dispatcher interface {
	SendMessage(ctx context.Context, text string) error
}

// OrderResult is returned after a successful dispatch.
type OrderResult struct {
	Reference string            `json:"reference"`
	Popup     models.PopupState `json:"popup"`
	// Reset carries the field rules the form re-applies after its reset
	// (both update routines run unconditionally).
	Reset models.FieldRules `json:"reset"`
}

// CardFillResult is the card-fill side effect payload: field values plus the
// control that should receive focus once the form scrolls into view.
type CardFillResult struct {
	Nominal  string `json:"nominal"`
	Kategori string `json:"kategori"`
	Harga    string `json:"harga"`
	Focus    string `json:"focus"`
}
