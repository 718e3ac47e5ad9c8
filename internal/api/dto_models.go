package api

import (
	"time"

	"topup-backend-go/internal/models"
	"topup-backend-go/internal/notify"
)

// ErrorResponse is a generic structure for returning errors via API. The
// optional Notice tells the page how to present the failure (popup kind,
// auto-hide delay, focus target).
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details string         `json:"details,omitempty"`
	Notice  *notify.Notice `json:"notice,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// StatusResponse is the storefront status payload. Panel reflects the
// recognized query flag only; it never implies write permission.
type StatusResponse struct {
	Open      bool      `json:"open"`
	UpdatedAt time.Time `json:"updatedAt"`
	Panel     bool      `json:"panel"`
}

// MethodsResponse lists the payment-method catalog computed for base 0.
type MethodsResponse struct {
	Methods []models.MethodView `json:"methods"`
}
