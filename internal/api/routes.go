package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"topup-backend-go/internal/config"
	"topup-backend-go/internal/core"
	"topup-backend-go/internal/db"
	"topup-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is applied to the
// router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	statusService core.StatusService,
	accessService core.AccessService,
	orderService core.OrderService,
	paymentService core.PaymentService,
) {
	// The privileged status toggle is the only authenticated route.
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be set up.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	statusHandler := NewStatusHandler(statusService, accessService)
	orderHandler := NewOrderHandler(orderService)
	paymentHandler := NewPaymentHandler(paymentService, appConfig.BotUsername)

	apiV1 := router.Group("/api/v1")
	{
		// Store status: public read (with the cosmetic panel flag), admin-only
		// write behind token verification.
		apiV1.GET("/status", statusHandler.GetStatus)
		apiV1.PUT("/status", authMW.VerifyToken(), statusHandler.SetStatus)

		// Order form: public. Submission validates and dispatches; card-fill
		// and field-rules feed the page's form behavior.
		ordersGroup := apiV1.Group("/orders")
		{
			ordersGroup.POST("", orderHandler.SubmitOrder)
			ordersGroup.POST("/card-fill", orderHandler.CardFill)
			ordersGroup.GET("/field-rules", orderHandler.FieldRules)
		}

		// Payment popup: catalog, quotes, and the bot hand-off plan.
		paymentsGroup := apiV1.Group("/payments")
		{
			paymentsGroup.GET("/methods", paymentHandler.ListMethods)
			paymentsGroup.POST("/quote", paymentHandler.Quote)
			paymentsGroup.GET("/handoff", paymentHandler.Handoff)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Top-up store backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
