package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"topup-backend-go/internal/models"
)

// fixedStatus satisfies StatusService with a pinned flag; only Current is
// consulted by the order path.
type fixedStatus struct {
	open bool
}

func (f *fixedStatus) Run(ctx context.Context) error                               { return nil }
func (f *fixedStatus) Current() models.StoreStatus                                 { return models.StoreStatus{Open: f.open} }
func (f *fixedStatus) Subscribe(fn func(models.StoreStatus)) func()                { return func() {} }
func (f *fixedStatus) SetOpen(ctx context.Context, s models.Session, o bool) error { return nil }

type fakeDispatcher struct {
	sent []string
	err  error
}

func (f *fakeDispatcher) SendMessage(ctx context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func newTestOrderService(open bool, d *fakeDispatcher) OrderService {
	return NewOrderService(&fixedStatus{open: open}, newTestPaymentService(), d, zap.NewNop())
}

func validRequest() models.SubmitOrderRequest {
	return models.SubmitOrderRequest{
		Username: "player1",
		Password: "hunter2",
		OTPMode:  "OFF",
		Kategori: "ML",
		Nominal:  "86 Diamonds",
		Harga:    "Rp25.000",
	}
}

func TestSubmitClosedStoreRejectsBeforeDispatch(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(false, d)

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.Empty(t, d.sent, "closed store must never reach the network")
}

func TestSubmitClosedStoreRejectsEvenWithBlankFields(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(false, d)

	// The closed check runs first, regardless of field contents.
	_, err := svc.Submit(context.Background(), models.SubmitOrderRequest{})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestSubmitRequiredFields(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	blank := func(mutate func(*models.SubmitOrderRequest)) models.SubmitOrderRequest {
		req := validRequest()
		mutate(&req)
		return req
	}
	tests := []struct {
		name  string
		req   models.SubmitOrderRequest
		focus string
	}{
		{"username", blank(func(r *models.SubmitOrderRequest) { r.Username = "   " }), FieldUsername},
		{"password", blank(func(r *models.SubmitOrderRequest) { r.Password = "" }), FieldPassword},
		{"kategori", blank(func(r *models.SubmitOrderRequest) { r.Kategori = "\t" }), FieldKategori},
		{"nominal", blank(func(r *models.SubmitOrderRequest) { r.Nominal = "" }), FieldNominal},
		{"harga", blank(func(r *models.SubmitOrderRequest) { r.Harga = " " }), FieldHarga},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.req)
			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tt.focus, ve.Field)
		})
	}
	assert.Empty(t, d.sent)
}

func TestSubmitModeOnRequiresMethod(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	req := validRequest()
	req.OTPMode = "ON"
	_, err := svc.Submit(context.Background(), req)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, FieldOTPMethod, ve.Field)
}

func TestSubmitBackupCodeMethodRequiresCode(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	req := validRequest()
	req.OTPMode = "ON"
	req.OTPMethod = "BC"
	req.BackupCode = "   "
	_, err := svc.Submit(context.Background(), req)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, FieldBackupCode, ve.Field)
	assert.Empty(t, d.sent)
}

func TestSubmitDispatchesSanitizedSummary(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	req := validRequest()
	req.Username = "player1 https://spam.example/x"
	req.OTPMode = "ON"
	req.OTPMethod = "BC"
	req.BackupCode = "12345678"

	res, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	text := d.sent[0]
	assert.Contains(t, text, "Pesanan Baru Masuk!")
	assert.Contains(t, text, "Username: player1")
	assert.Contains(t, text, "Password: hunter2")
	assert.Contains(t, text, "V2L: ON (BC)")
	assert.Contains(t, text, "Backup Code: 12345678")
	assert.Contains(t, text, "Kategori: ML")
	assert.Contains(t, text, "Harga: Rp25.000")
	assert.NotContains(t, text, "https://")

	assert.NotEmpty(t, res.Reference)
}

func TestSubmitSuccessOpensPopupAndReturnsReset(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	res, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, models.MethodQRIS, res.Popup.Selected)
	assert.Equal(t, int64(25000), res.Popup.BaseAmount)
	assert.Equal(t, "Rp25.000", res.Popup.Harga)

	// Post-reset rules match the OFF/none projection.
	assert.Equal(t, svc.Rules(models.OTPModeOff, models.OTPMethodNone), res.Reset)
	assert.False(t, res.Reset.MethodVisible)
}

func TestSubmitDispatchFailure(t *testing.T) {
	d := &fakeDispatcher{err: assert.AnError}
	svc := newTestOrderService(true, d)

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSubmitNoDeduplication(t *testing.T) {
	d := &fakeDispatcher{}
	svc := newTestOrderService(true, d)

	// Two identical rapid submissions both dispatch; nothing dedupes them.
	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, d.sent, 2)
}

func TestRulesOff(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	for _, method := range []models.OTPMethod{models.OTPMethodNone, models.OTPMethodBackupCode, models.OTPMethodEmail} {
		r := svc.Rules(models.OTPModeOff, method)
		assert.False(t, r.MethodVisible)
		assert.False(t, r.MethodRequired)
		assert.True(t, r.MethodCleared)
		assert.False(t, r.BackupVisible)
		assert.False(t, r.BackupRequired)
		assert.True(t, r.BackupCleared)
		assert.False(t, r.EmailVisible)
	}
}

func TestRulesOnNoMethod(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	r := svc.Rules(models.OTPModeOn, models.OTPMethodNone)
	assert.True(t, r.MethodVisible)
	assert.True(t, r.MethodRequired)
	assert.False(t, r.BackupVisible)
	assert.False(t, r.BackupRequired)
	assert.True(t, r.BackupCleared)
	assert.False(t, r.EmailVisible)
}

func TestRulesOnBackupCode(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	r := svc.Rules(models.OTPModeOn, models.OTPMethodBackupCode)
	assert.True(t, r.BackupVisible)
	assert.True(t, r.BackupRequired)
	assert.False(t, r.BackupCleared)
	assert.False(t, r.EmailVisible)
}

func TestRulesOnEmail(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	r := svc.Rules(models.OTPModeOn, models.OTPMethodEmail)
	assert.True(t, r.EmailVisible)
	assert.False(t, r.BackupVisible)
	assert.False(t, r.BackupRequired)
	assert.True(t, r.BackupCleared)
}

func TestCardFill(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	res := svc.CardFill(models.CardFillRequest{Name: "86 Diamonds", Harga: "25000", Kategori: "ML"})
	assert.Equal(t, "86 Diamonds", res.Nominal)
	assert.Equal(t, "ML", res.Kategori)
	assert.Equal(t, "Rp25.000", res.Harga)
	assert.Equal(t, FieldUsername, res.Focus)
}

func TestCardFillUnparseablePriceKeepsRawText(t *testing.T) {
	svc := newTestOrderService(true, &fakeDispatcher{})

	res := svc.CardFill(models.CardFillRequest{Name: "Custom", Harga: "hubungi admin", Kategori: "Lainnya"})
	assert.Equal(t, "hubungi admin", res.Harga)
}
