package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-backend-go/internal/core"
	"topup-backend-go/internal/models"
	"topup-backend-go/internal/notify"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- fakes ---

type fakeStatusService struct {
	status   models.StoreStatus
	setErr   error
	setCalls []bool
}

func (f *fakeStatusService) Run(ctx context.Context) error                { return nil }
func (f *fakeStatusService) Current() models.StoreStatus                  { return f.status }
func (f *fakeStatusService) Subscribe(fn func(models.StoreStatus)) func() { return func() {} }
func (f *fakeStatusService) SetOpen(ctx context.Context, session models.Session, open bool) error {
	if !session.IsAdmin {
		return core.ErrAccessDenied
	}
	f.setCalls = append(f.setCalls, open)
	return f.setErr
}

type fakeAccessService struct {
	session models.Session
	err     error
}

func (f *fakeAccessService) ResolveSession(ctx context.Context, userID, email string) (models.Session, error) {
	return f.session, f.err
}

type fakeOrderService struct {
	result *core.OrderResult
	err    error
}

func (f *fakeOrderService) Submit(ctx context.Context, req models.SubmitOrderRequest) (*core.OrderResult, error) {
	return f.result, f.err
}
func (f *fakeOrderService) CardFill(req models.CardFillRequest) core.CardFillResult {
	return core.CardFillResult{Nominal: req.Name, Kategori: req.Kategori, Harga: req.Harga, Focus: "usr"}
}
func (f *fakeOrderService) Rules(mode models.OTPMode, method models.OTPMethod) models.FieldRules {
	return models.FieldRules{MethodVisible: mode == models.OTPModeOn}
}

// authStub plays the auth middleware role, placing identity in the context.
func authStub(userID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		if email != "" {
			c.Set("userEmail", email)
		}
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- status handler ---

func TestGetStatusPanelFlag(t *testing.T) {
	h := NewStatusHandler(&fakeStatusService{status: models.StoreStatus{Open: true}}, &fakeAccessService{})
	router := gin.New()
	router.GET("/status", h.GetStatus)

	w := performJSON(t, router, http.MethodGet, "/status?panel=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Open)
	assert.True(t, resp.Panel)

	w = performJSON(t, router, http.MethodGet, "/status", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Panel)
}

func TestSetStatusAsAdmin(t *testing.T) {
	ss := &fakeStatusService{status: models.StoreStatus{Open: true}}
	as := &fakeAccessService{session: models.Session{UserID: "u1", Email: "dini@example.com", IsAdmin: true}}
	h := NewStatusHandler(ss, as)
	router := gin.New()
	router.PUT("/status", authStub("u1", "dini@example.com"), h.SetStatus)

	open := false
	w := performJSON(t, router, http.MethodPut, "/status", models.SetStatusRequest{Open: &open})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []bool{false}, ss.setCalls)
}

func TestSetStatusNonAdminRejectedWithNotice(t *testing.T) {
	ss := &fakeStatusService{}
	as := &fakeAccessService{err: core.ErrNotAdmin}
	h := NewStatusHandler(ss, as)
	router := gin.New()
	router.PUT("/status", authStub("u2", "other@example.com"), h.SetStatus)

	open := true
	w := performJSON(t, router, http.MethodPut, "/status", models.SetStatusRequest{Open: &open})
	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Notice)
	assert.Equal(t, notify.KindDenied, resp.Notice.Kind)
	assert.Empty(t, ss.setCalls, "rejected session must not reach the service write")
}

func TestSetStatusMissingAuthContext(t *testing.T) {
	h := NewStatusHandler(&fakeStatusService{}, &fakeAccessService{})
	router := gin.New()
	router.PUT("/status", h.SetStatus) // no auth middleware ran

	open := true
	w := performJSON(t, router, http.MethodPut, "/status", models.SetStatusRequest{Open: &open})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- order handler ---

func TestSubmitOrderClosedStore(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{err: core.ErrStoreClosed})
	router := gin.New()
	router.POST("/orders", h.SubmitOrder)

	w := performJSON(t, router, http.MethodPost, "/orders", models.SubmitOrderRequest{Username: "x"})
	assert.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Notice)
	assert.Equal(t, notify.KindValidation, resp.Notice.Kind)
}

func TestSubmitOrderValidationFocus(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{err: &core.ValidationError{Field: "bc", Message: "Masukkan Backup Code saat memilih metode Backup Code."}})
	router := gin.New()
	router.POST("/orders", h.SubmitOrder)

	w := performJSON(t, router, http.MethodPost, "/orders", models.SubmitOrderRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "bc", resp.Notice.Focus)
	assert.EqualValues(t, notify.CenterPopupTTL.Milliseconds(), resp.Notice.TTLMs)
}

func TestSubmitOrderSuccessReturnsPopup(t *testing.T) {
	result := &core.OrderResult{
		Reference: "ref-1",
		Popup:     models.PopupState{Selected: models.MethodQRIS, Harga: "Rp25.000"},
	}
	h := NewOrderHandler(&fakeOrderService{result: result})
	router := gin.New()
	router.POST("/orders", h.SubmitOrder)

	w := performJSON(t, router, http.MethodPost, "/orders", models.SubmitOrderRequest{Username: "x"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp core.OrderResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, models.MethodQRIS, resp.Popup.Selected)
}

func TestCardFillEndpoint(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{})
	router := gin.New()
	router.POST("/orders/card-fill", h.CardFill)

	w := performJSON(t, router, http.MethodPost, "/orders/card-fill", models.CardFillRequest{Name: "86 Diamonds", Harga: "25000", Kategori: "ML"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp core.CardFillResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "usr", resp.Focus)
}

// --- payment handler ---

func TestQuoteEndpoint(t *testing.T) {
	ps := core.NewPaymentService("https://example.com/qr.jpg", "0831", "9016", "0831")
	h := NewPaymentHandler(ps, "topupgamesbot")
	router := gin.New()
	router.POST("/payments/quote", h.Quote)

	w := performJSON(t, router, http.MethodPost, "/payments/quote", models.QuoteRequest{Harga: "Rp1.000.000", Method: "dana"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.PopupState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.MethodDana, resp.Selected)
	assert.Equal(t, int64(1000100), resp.View.Total)
}

func TestQuoteUnknownMethodEndpoint(t *testing.T) {
	ps := core.NewPaymentService("https://example.com/qr.jpg", "0831", "9016", "0831")
	h := NewPaymentHandler(ps, "topupgamesbot")
	router := gin.New()
	router.POST("/payments/quote", h.Quote)

	w := performJSON(t, router, http.MethodPost, "/payments/quote", models.QuoteRequest{Harga: "Rp10.000", Method: "ovo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandoffEndpointUserAgent(t *testing.T) {
	ps := core.NewPaymentService("https://example.com/qr.jpg", "0831", "9016", "0831")
	h := NewPaymentHandler(ps, "topupgamesbot")
	router := gin.New()
	router.GET("/payments/handoff", h.Handoff)

	req := httptest.NewRequest(http.MethodGet, "/payments/handoff", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "direct", resp["navigate"])
	assert.Equal(t, "tg://resolve?domain=topupgamesbot", resp["appUrl"])
}
