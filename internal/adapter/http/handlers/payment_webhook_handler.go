package handlers

import (
	"errors"
	"net/http"

	request "checkout_webhooks/internal/adapter/http/dto/request"
	response "checkout_webhooks/internal/adapter/http/dto/response"
	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase"
	"checkout_webhooks/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentWebhookHandler receives payment-provider notifications.
type PaymentWebhookHandler struct {
	usecase usecase.IPaymentWebhookUseCase
	logger  *zap.Logger
}

func NewPaymentWebhookHandler(uc usecase.IPaymentWebhookUseCase, logger *zap.Logger) *PaymentWebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentWebhookHandler{usecase: uc, logger: logger.Named("webhook.handler")}
}

// HandleCakto godoc
// @Summary      Receive a Cakto webhook
// @Description  Verifies the Cakto secret, matches the order and marks it paid on approved events.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Cakto-Secret  header    string  false  "Cakto secret (alternative to body field secret)"
// @Param        payload         body      object  true   "Cakto notification"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/cakto [post]
func (h *PaymentWebhookHandler) HandleCakto(c *gin.Context) {
	h.handle(c, entities.ProviderCakto)
}

// HandleHotmart godoc
// @Summary      Receive a Hotmart webhook
// @Description  Verifies the Hotmart hottok, matches the order and marks it paid on approved events.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Hotmart-Hottok  header    string  false  "Hotmart hottok (alternative to body field hottok)"
// @Param        payload           body      object  true   "Hotmart notification"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/hotmart [post]
func (h *PaymentWebhookHandler) HandleHotmart(c *gin.Context) {
	h.handle(c, entities.ProviderHotmart)
}

func (h *PaymentWebhookHandler) handle(c *gin.Context, provider entities.Provider) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("request body unreadable", zap.String("provider", string(provider)), zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found := request.ExtractWebhookCredentials(string(provider), c.Request.Header, raw)
	creds := usecase.Credentials{Token: found.Token, BearerToken: found.Bearer}

	out, err := h.usecase.ProcessWebhook(c.Request.Context(), provider, raw, creds)
	if err != nil {
		appErr := mapWebhookError(err)
		h.logger.Info("webhook rejected",
			zap.String("provider", string(provider)),
			zap.Int("status", appErr.HTTPStatus),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := out.HTTPStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, response.FromWebhookOutcome(out))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPayload):
		return pkg.NewDomainErrorSimple("EMPTY_PAYLOAD", "Empty payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoIdentifier):
		return pkg.NewDomainErrorSimple("NO_IDENTIFIER", "No order identifier found in payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidationMismatch):
		return pkg.NewDomainErrorSimple("VALIDATION_MISMATCH", "Customer data does not match order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedProvider):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PROVIDER", "Unsupported provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSecretNotConfigured):
		return pkg.NewDomainError("CONFIG_MISSING", "Webhook secret not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Failed to update order", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
