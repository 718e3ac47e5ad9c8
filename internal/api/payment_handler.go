package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"topup-backend-go/internal/core"
	"topup-backend-go/internal/handoff"
	"topup-backend-go/internal/models"
)

// PaymentHandler handles payment quotes and the bot hand-off plan.
type PaymentHandler struct {
	paymentService core.PaymentService
	botUsername    string
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps core.PaymentService, botUsername string) *PaymentHandler {
	return &PaymentHandler{paymentService: ps, botUsername: botUsername}
}

// ListMethods handles GET /api/v1/payments/methods: the fixed catalog,
// computed at base 0 so labels/notes/number visibility are all present.
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	st := h.paymentService.Popup("")
	c.JSON(http.StatusOK, MethodsResponse{Methods: st.Methods})
}

// Quote handles POST /api/v1/payments/quote: recompute the popup for one
// harga string with the chosen method selected (QRIS when omitted).
func (h *PaymentHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	method := models.PaymentMethodKey(req.Method)
	if req.Method == "" {
		method = models.MethodQRIS
	}
	st, err := h.paymentService.Quote(req.Harga, method)
	if err != nil {
		if errors.Is(err, core.ErrUnknownMethod) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown payment method", Details: req.Method})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute quote", Details: err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

// Handoff handles GET /api/v1/payments/handoff: the deep-link plan for the
// requesting user agent.
func (h *PaymentHandler) Handoff(c *gin.Context) {
	c.JSON(http.StatusOK, handoff.ForUserAgent(h.botUsername, c.GetHeader("User-Agent")))
}
