package models

// SubmitOrderRequest represents the request body for submitting the order
// form. Field values arrive exactly as the page holds them; trimming and the
// conditional requiredness rules are applied server-side in the same order
// the form applies them.
type SubmitOrderRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	OTPMode    string `json:"otpMode"`
	OTPMethod  string `json:"otpMethod,omitempty"`
	BackupCode string `json:"backupCode,omitempty"`
	Kategori   string `json:"kategori"`
	Nominal    string `json:"nominal"`
	Harga      string `json:"harga"`
}

// SetStatusRequest represents the request body for the privileged open/close
// toggle.
type SetStatusRequest struct {
	Open *bool `json:"open" binding:"required"` // Pointer so `false` survives the required check
}

// CardFillRequest carries a price card's data attributes when the user taps
// a card and the form is prefilled from it.
type CardFillRequest struct {
	Name     string `json:"name"`
	Harga    string `json:"harga"`
	Kategori string `json:"kategori"`
}

// QuoteRequest asks for a payment popup recomputed for one harga string,
// optionally preselecting a method.
type QuoteRequest struct {
	Harga  string `json:"harga" binding:"required"`
	Method string `json:"method,omitempty"`
}
