package models

import "topup-backend-go/internal/notify"

// PaymentMethodKey identifies one entry of the closed payment-method catalog.
type PaymentMethodKey string

const (
	MethodQRIS    PaymentMethodKey = "qris"
	MethodGoPay   PaymentMethodKey = "gopay"
	MethodSeaBank PaymentMethodKey = "seabank"
	MethodDana    PaymentMethodKey = "dana"
)

// MethodView is what the payment popup renders for the selected method. The
// destination number and the formatted total are the two copyable payloads;
// each carries the confirmation the page flashes after a successful copy.
type MethodView struct {
	Method         PaymentMethodKey `json:"method"`
	Label          string           `json:"label"`
	Note           string           `json:"note"`
	Total          int64            `json:"total"`
	TotalFormatted string           `json:"totalFormatted"`
	NumberTitle    string           `json:"numberTitle,omitempty"`
	Number         string           `json:"number,omitempty"`
	ShowNumber     bool             `json:"showNumber"`
	ShowQR         bool             `json:"showQr"`
	QRURL          string           `json:"qrUrl,omitempty"`

	CopyNumberNotice *notify.Notice `json:"copyNumberNotice,omitempty"`
	CopyTotalNotice  *notify.Notice `json:"copyTotalNotice,omitempty"`
}

// Dismissal tells the page which gestures close the popup: the close control
// always works, the backdrop only when the click target is the backdrop
// itself (not a click inside the dialog that bubbled up).
type Dismissal struct {
	CloseControl      bool `json:"closeControl"`
	BackdropExactOnly bool `json:"backdropExactOnly"`
}

// PopupState is the full payment-popup payload handed to the page after a
// successful order dispatch or an explicit quote request.
type PopupState struct {
	BaseAmount int64            `json:"baseAmount"`
	Harga      string           `json:"harga"`
	Selected   PaymentMethodKey `json:"selected"`
	View       MethodView       `json:"view"`
	Methods    []MethodView     `json:"methods"`
	Dismiss    Dismissal        `json:"dismiss"`
}
