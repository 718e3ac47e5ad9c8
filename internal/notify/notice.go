// Package notify models the transient on-screen notices the storefront shows:
// centered validation popups, access-denied messages, and copy confirmations.
// The backend attaches a Notice to error responses so the page renders a
// consistent popup with the right auto-hide delay and focus target.
package notify

import "time"

// Kind classifies a notice per the storefront error taxonomy.
type Kind string

const (
	KindValidation Kind = "validation" // user-correctable input problem
	KindDenied     Kind = "denied"     // privileged action without privilege
	KindTransport  Kind = "transport"  // remote write / dispatch failure
	KindInfo       Kind = "info"       // confirmations (copy success etc.)
)

// Auto-hide delays used by the page. The center popup lingers long enough to
// read; copy confirmations flash briefly.
const (
	CenterPopupTTL = 4 * time.Second
	CopyConfirmTTL = 2500 * time.Millisecond
)

// Notice is a transient message with an auto-hide delay and, for validation
// failures, the form control that should regain focus.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	TTLMs   int64  `json:"ttlMs"`
	Focus   string `json:"focus,omitempty"`
}

// Validation builds a validation notice focused on the offending control.
func Validation(message, focus string) Notice {
	return Notice{Kind: KindValidation, Message: message, TTLMs: CenterPopupTTL.Milliseconds(), Focus: focus}
}

// Denied builds an access-denied notice.
func Denied(message string) Notice {
	return Notice{Kind: KindDenied, Message: message, TTLMs: CenterPopupTTL.Milliseconds()}
}

// Transport builds a generic transport-failure notice.
func Transport(message string) Notice {
	return Notice{Kind: KindTransport, Message: message, TTLMs: CenterPopupTTL.Milliseconds()}
}

// CopyConfirm builds the short-lived confirmation shown after a clipboard copy.
func CopyConfirm(message string) Notice {
	return Notice{Kind: KindInfo, Message: message, TTLMs: CopyConfirmTTL.Milliseconds()}
}
