package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"topup-backend-go/internal/core"
	"topup-backend-go/internal/models"
	"topup-backend-go/internal/notify"
	"topup-backend-go/internal/telegram"
)

// OrderHandler handles order submission and the price-card fill-in.
type OrderHandler struct {
	orderService core.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os core.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

// SubmitOrder handles POST /api/v1/orders. Validation failures answer with a
// notice and the control to refocus; a successful dispatch answers with the
// payment popup payload and the post-reset field rules.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	result, err := h.orderService.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeSubmitError maps the submission error taxonomy onto status codes and
// notices: closed store and validation failures are user-facing popups;
// dispatch trouble is a generic transport notice.
func (h *OrderHandler) writeSubmitError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrStoreClosed) {
		n := notify.Validation("Mohon maaf, layanan sedang tutup. Silahkan pesan saat sudah memasuki jam kerja", "")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Store is closed", Notice: &n})
		return
	}
	if ve, ok := core.AsValidationError(err); ok {
		n := notify.Validation(ve.Message, ve.Field)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message, Notice: &n})
		return
	}
	if errors.Is(err, telegram.ErrDispatchFailed) {
		n := notify.Transport("Gagal kirim ke Telegram")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Dispatch failed", Notice: &n})
		return
	}
	log.Printf("SubmitOrder Error: orderService.Submit failed: %v", err)
	n := notify.Transport("Terjadi kesalahan.")
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Dispatch error", Details: err.Error(), Notice: &n})
}

// CardFill handles POST /api/v1/orders/card-fill: a tapped price card's data
// attributes come in, normalized form field values go out.
func (h *OrderHandler) CardFill(c *gin.Context) {
	var req models.CardFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.orderService.CardFill(req))
}

// FieldRules handles GET /api/v1/orders/field-rules. The page calls it for
// both controls at startup and on every change event.
func (h *OrderHandler) FieldRules(c *gin.Context) {
	mode := models.OTPMode(c.DefaultQuery("mode", string(models.OTPModeOff)))
	method := models.OTPMethod(c.Query("method"))
	c.JSON(http.StatusOK, h.orderService.Rules(mode, method))
}
