package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safespend/safespend-api/internal/api/metrics"
	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// BillingHandler handles checkout, portal, and webhook endpoints for the
// subscription flow.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

type sessionResponse struct {
	URL string `json:"url"`
}

type webhookRequest struct {
	ID         string `json:"id"         validate:"required"`
	Type       string `json:"type"       validate:"required"`
	CustomerID string `json:"customerId" validate:"required"`
	Status     string `json:"status"`
}

// Checkout handles POST /api/billing/checkout-session.
//
// @Summary      Create a checkout session
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/billing/checkout-session [post]
func (h *BillingHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	url, err := h.service.CreateCheckoutSession(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{URL: url})
}

// Portal handles POST /api/billing/portal-session.
//
// @Summary      Create a billing portal session
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/billing/portal-session [post]
func (h *BillingHandler) Portal(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	url, err := h.service.CreatePortalSession(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{URL: url})
}

// Webhook handles POST /api/billing/webhook. The endpoint is unauthenticated;
// the provider identifies the user by customer id. Events are acknowledged
// with 200 even when the customer is unknown, so the provider stops retrying.
//
// @Summary      Receive a billing webhook event
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body      webhookRequest  true  "Provider event"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/billing/webhook [post]
func (h *BillingHandler) Webhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		metrics.BillingWebhooksTotal.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.BillingWebhooksTotal.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.HandleWebhook(c.Request().Context(), ports.WebhookEvent{
		ID:         req.ID,
		Type:       req.Type,
		CustomerID: req.CustomerID,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.BillingWebhooksTotal.WithLabelValues("ignored").Inc()
			return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
		}
		metrics.BillingWebhooksTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.BillingWebhooksTotal.WithLabelValues("applied").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "received"})
}
