package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"topup-backend-go/internal/core"
	"topup-backend-go/internal/models"
	"topup-backend-go/internal/notify"
)

// StatusHandler handles the store-status read and the privileged toggle.
type StatusHandler struct {
	statusService core.StatusService
	accessService core.AccessService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(ss core.StatusService, as core.AccessService) *StatusHandler {
	return &StatusHandler{statusService: ss, accessService: as}
}

// GetStatus handles GET /api/v1/status. Public; the "panel" query flag is
// echoed back so the page can decide whether to render the admin panel,
// independent of authentication.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	st := h.statusService.Current()
	panel := c.Query("panel")
	c.JSON(http.StatusOK, StatusResponse{
		Open:      st.Open,
		UpdatedAt: st.UpdatedAt,
		Panel:     panel == "1" || panel == "true",
	})
}

// SetStatus handles PUT /api/v1/status. Requires an authenticated identity;
// only the admin address may flip the flag.
func (h *StatusHandler) SetStatus(c *gin.Context) {
	session, ok := h.resolveSession(c)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if err := h.statusService.SetOpen(c.Request.Context(), session, *req.Open); err != nil {
		if errors.Is(err, core.ErrAccessDenied) {
			n := notify.Denied("Akses ditolak. Hanya admin yang bisa mengubah status.")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied", Notice: &n})
			return
		}
		log.Printf("SetStatus Error: statusService.SetOpen failed: %v", err)
		n := notify.Transport("Gagal menyimpan status toko.")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to update store status", Details: err.Error(), Notice: &n})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Store status updated"})
}

// resolveSession builds the admin session from the context the auth
// middleware populated. A non-admin identity is force-signed-out by the
// access service and rejected here.
func (h *StatusHandler) resolveSession(c *gin.Context) (models.Session, bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return models.Session{}, false
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return models.Session{}, false
	}
	email, _ := c.Get("userEmail")
	emailStr, _ := email.(string)

	session, err := h.accessService.ResolveSession(c.Request.Context(), userID, emailStr)
	if err != nil {
		if errors.Is(err, core.ErrNotAdmin) {
			n := notify.Denied("Email ini bukan admin.")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not an admin", Notice: &n})
			return models.Session{}, false
		}
		log.Printf("resolveSession Error: accessService.ResolveSession failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve session", Details: err.Error()})
		return models.Session{}, false
	}
	return session, true
}
