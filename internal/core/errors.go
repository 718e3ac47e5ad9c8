package core

import "errors"

// Sentinel errors surfaced to the API layer, which maps them onto the
// storefront's notice taxonomy.
var (
	// ErrAccessDenied: privileged operation attempted without an admin session.
	ErrAccessDenied = errors.New("access denied: admin only")
	// ErrNotAdmin: an authenticated identity that is not the admin address.
	ErrNotAdmin = errors.New("authenticated identity is not the admin")
	// ErrStoreClosed: submission while the status flag is closed.
	ErrStoreClosed = errors.New("store is closed for orders")
	// ErrUnknownMethod: a payment method outside the fixed catalog.
	ErrUnknownMethod = errors.New("unknown payment method")
)

// ValidationError is a user-correctable submission failure. Field names the
// form control to refocus.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
