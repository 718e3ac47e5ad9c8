package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"topup-backend-go/internal/format"
	"topup-backend-go/internal/models"
	"topup-backend-go/internal/sanitize"
)

// Form control names, as the page knows them. Validation failures reference
// these so focus lands on the offending control.
const (
	FieldUsername   = "usr"
	FieldPassword   = "pwd"
	FieldOTPMode    = "v2"
	FieldOTPMethod  = "v2m"
	FieldBackupCode = "bc"
	FieldKategori   = "kt"
	FieldNominal    = "nm"
	FieldHarga      = "hg"
)

// orderService implements OrderService.
type orderService struct {
	statusService  StatusService
	paymentService PaymentService
	dispatcher     Dispatcher
	logger         *zap.Logger
}

// NewOrderService creates an OrderService instance.
func NewOrderService(statusService StatusService, paymentService PaymentService, dispatcher Dispatcher, logger *zap.Logger) OrderService {
	return &orderService{
		statusService:  statusService,
		paymentService: paymentService,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// Rules applies the mode routine, then the method routine, in that order:
// the same order the form wires its two change handlers and its init.
func (s *orderService) Rules(mode models.OTPMode, method models.OTPMethod) models.FieldRules {
	var r models.FieldRules

	// Mode routine: OFF hides and clears everything downstream.
	if mode == models.OTPModeOn {
		r.MethodVisible = true
		r.MethodRequired = true
	} else {
		r.MethodCleared = true
		r.BackupCleared = true
		return r
	}

	// Method routine, only meaningful while ON.
	switch method {
	case models.OTPMethodBackupCode:
		r.BackupVisible = true
		r.BackupRequired = true
	case models.OTPMethodEmail:
		r.EmailVisible = true
		r.BackupCleared = true
	default:
		r.BackupCleared = true
	}
	return r
}

// Submit runs the validation chain in order, short-circuiting on the first
// failure, then sanitizes and dispatches the order text exactly once.
func (s *orderService) Submit(ctx context.Context, req models.SubmitOrderRequest) (*OrderResult, error) {
	// 1. Closed store rejects before anything else; no other rule runs and
	// nothing leaves the process.
	if !s.statusService.Current().Open {
		return nil, ErrStoreClosed
	}

	draft := draftFromRequest(req)

	// 2. Standard required fields, blank-after-trim check.
	required := []struct {
		field string
		value string
	}{
		{FieldUsername, draft.Username},
		{FieldPassword, draft.Password},
		{FieldKategori, draft.Kategori},
		{FieldNominal, draft.Nominal},
		{FieldHarga, draft.Harga},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &ValidationError{Field: f.field, Message: "harap isi semua kolom yang diwajibkan!"}
		}
	}

	// 3. Mode ON demands a chosen method.
	if draft.OTPMode == models.OTPModeOn && draft.OTPMethod == models.OTPMethodNone {
		return nil, &ValidationError{Field: FieldOTPMethod, Message: "Pilih metode V2L terlebih dahulu."}
	}

	// 4. Backup-code method demands the code itself.
	if draft.OTPMode == models.OTPModeOn && draft.OTPMethod == models.OTPMethodBackupCode &&
		strings.TrimSpace(draft.BackupCode) == "" {
		return nil, &ValidationError{Field: FieldBackupCode, Message: "Masukkan Backup Code saat memilih metode Backup Code."}
	}

	text := sanitize.OrderText(summaryText(draft))

	if err := s.dispatcher.SendMessage(ctx, text); err != nil {
		return nil, fmt.Errorf("order dispatch: %w", err)
	}

	ref := uuid.NewString()
	s.logger.Info("order dispatched",
		zap.String("reference", ref),
		zap.String("kategori", draft.Kategori),
		zap.String("harga", draft.Harga),
	)

	return &OrderResult{
		Reference: ref,
		Popup:     s.paymentService.Popup(draft.Harga),
		Reset:     s.Rules(models.OTPModeOff, models.OTPMethodNone),
	}, nil
}

// CardFill copies a card's data attributes into form values; the price is
// normalized to the rupiah string (raw text kept when unparseable) and focus
// moves to the username field.
func (s *orderService) CardFill(req models.CardFillRequest) CardFillResult {
	return CardFillResult{
		Nominal:  req.Name,
		Kategori: req.Kategori,
		Harga:    format.NormalizeHarga(req.Harga),
		Focus:    FieldUsername,
	}
}

// draftFromRequest normalizes raw request strings into the draft enums.
// Anything that is not exactly ON counts as OFF, and the method only
// survives while the mode is ON, mirroring the form, where switching the
// mode off clears the method selector.
func draftFromRequest(req models.SubmitOrderRequest) models.OrderDraft {
	mode := models.OTPModeOff
	if req.OTPMode == string(models.OTPModeOn) {
		mode = models.OTPModeOn
	}
	method := models.OTPMethodNone
	if mode == models.OTPModeOn {
		switch req.OTPMethod {
		case string(models.OTPMethodBackupCode):
			method = models.OTPMethodBackupCode
		case string(models.OTPMethodEmail):
			method = models.OTPMethodEmail
		}
	}
	backup := req.BackupCode
	if method != models.OTPMethodBackupCode {
		backup = ""
	}
	return models.OrderDraft{
		Username:   req.Username,
		Password:   req.Password,
		OTPMode:    mode,
		OTPMethod:  method,
		BackupCode: backup,
		Kategori:   req.Kategori,
		Nominal:    req.Nominal,
		Harga:      req.Harga,
	}
}

// summaryText renders the fixed human-readable order message. The password
// travels in plaintext; that is the storefront's documented behavior, not an
// oversight of this port.
func summaryText(d models.OrderDraft) string {
	var b strings.Builder
	b.WriteString("Pesanan Baru Masuk!\n\n")
	b.WriteString("Username: " + d.Username + "\n")
	b.WriteString("Password: " + d.Password + "\n")
	b.WriteString("V2L: " + string(d.OTPMode))
	if d.OTPMethod != models.OTPMethodNone {
		b.WriteString(" (" + string(d.OTPMethod) + ")")
	}
	if d.BackupCode != "" {
		b.WriteString("\nBackup Code: " + d.BackupCode)
	}
	b.WriteString("\nKategori: " + d.Kategori)
	b.WriteString("\nNominal: " + d.Nominal)
	b.WriteString("\nHarga: " + d.Harga)
	return b.String()
}
