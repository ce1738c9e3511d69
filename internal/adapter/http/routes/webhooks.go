package routes

import (
	"checkout_webhooks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.PaymentWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/cakto", h.HandleCakto)
		webhooks.POST("/hotmart", h.HandleHotmart)
	}
}
