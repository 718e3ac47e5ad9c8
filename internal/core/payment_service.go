package core

import (
	"fmt"
	"math"

	"topup-backend-go/internal/format"
	"topup-backend-go/internal/models"
	"topup-backend-go/internal/notify"
)

// qrisFeeThreshold is the base amount above which QRIS charges 0.3%.
const qrisFeeThreshold = 499000

// methodConfig is one row of the closed payment-method catalog.
type methodConfig struct {
	key         models.PaymentMethodKey
	label       string
	numberTitle string
	number      string
	calcTotal   func(base int64) int64
	note        string
	showNumber  bool
}

// paymentService implements PaymentService over a fixed, data-driven catalog.
type paymentService struct {
	qrURL   string
	catalog []methodConfig
}

// NewPaymentService creates a PaymentService. The destination numbers are
// configuration; the fee rules and notes are fixed.
func NewPaymentService(qrURL, gopayNumber, seabankNumber, danaNumber string) PaymentService {
	return &paymentService{
		qrURL: qrURL,
		catalog: []methodConfig{
			{
				key:   models.MethodQRIS,
				label: "QRIS (scan QR di atas)",
				calcTotal: func(base int64) int64 {
					if base <= qrisFeeThreshold {
						return base
					}
					fee := int64(math.Round(float64(base) * 0.003)) // 0.3%
					return base + fee
				},
				note:       "QRIS hingga Rp499.000 tidak ada biaya tambahan. Di atas itu akan dikenakan biaya 0,3% dari nominal.",
				showNumber: false,
			},
			{
				key:         models.MethodGoPay,
				label:       "Transfer GoPay ke GoPay",
				numberTitle: "No HP GoPay",
				number:      gopayNumber,
				calcTotal:   func(base int64) int64 { return base },
				note:        "Pembayaran GoPay tidak ada biaya tambahan. Bayar sesuai nominal yang tertera.",
				showNumber:  true,
			},
			{
				key:         models.MethodSeaBank,
				label:       "Transfer SeaBank",
				numberTitle: "No rekening SeaBank",
				number:      seabankNumber,
				calcTotal:   func(base int64) int64 { return base },
				note:        "SeaBank tidak ada biaya tambahan. Bayar sesuai nominal yang tertera.",
				showNumber:  true,
			},
			{
				key:         models.MethodDana,
				label:       "Transfer dari DANA KE DANA",
				numberTitle: "No HP DANA",
				number:      danaNumber,
				calcTotal:   func(base int64) int64 { return base + 100 },
				note:        "Pembayaran DANA wajib transfer dari DANA. Dikenakan biaya admin Rp100. Total sudah termasuk biaya admin.",
				showNumber:  true,
			},
		},
	}
}

// Popup builds the popup for a price label with QRIS preselected.
func (s *paymentService) Popup(harga string) models.PopupState {
	st, _ := s.Quote(harga, models.MethodQRIS)
	return st
}

// Quote builds the popup with the given method selected. Unparseable harga
// yields base amount 0; an unknown method is an error.
func (s *paymentService) Quote(harga string, method models.PaymentMethodKey) (models.PopupState, error) {
	base, _ := format.ParseAmount(harga)

	var selected *models.MethodView
	views := make([]models.MethodView, 0, len(s.catalog))
	for i := range s.catalog {
		v := s.view(&s.catalog[i], base)
		views = append(views, v)
		if s.catalog[i].key == method {
			selected = &views[i]
		}
	}
	if selected == nil {
		return models.PopupState{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	return models.PopupState{
		BaseAmount: base,
		Harga:      harga,
		Selected:   method,
		View:       *selected,
		Methods:    views,
		Dismiss:    models.Dismissal{CloseControl: true, BackdropExactOnly: true},
	}, nil
}

// view computes the render state for one catalog row: label, note, total,
// destination number visibility, and the QR image shown only for QRIS.
func (s *paymentService) view(cfg *methodConfig, base int64) models.MethodView {
	total := cfg.calcTotal(base)
	totalCopied := notify.CopyConfirm("Jumlah berhasil disalin")
	v := models.MethodView{
		Method:          cfg.key,
		Label:           cfg.label,
		Note:            cfg.note,
		Total:           total,
		TotalFormatted:  format.Rupiah(total),
		ShowNumber:      cfg.showNumber,
		ShowQR:          cfg.key == models.MethodQRIS,
		CopyTotalNotice: &totalCopied,
	}
	if cfg.showNumber {
		v.NumberTitle = cfg.numberTitle
		v.Number = cfg.number
		numberCopied := notify.CopyConfirm("Nomor berhasil disalin")
		v.CopyNumberNotice = &numberCopied
	}
	if v.ShowQR {
		v.QRURL = s.qrURL
	}
	return v
}
