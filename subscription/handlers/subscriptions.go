package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leafrank/backend/common"
	"github.com/leafrank/backend/framework/connection"
	"github.com/leafrank/backend/framework/web"
	"github.com/leafrank/backend/logger"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/subscription/domain"
	"github.com/leafrank/backend/subscription/service"
)

type SubscriptionsHandler struct {
	loggerProvider      logger.Provider
	subscriptionService service.SubscriptionWorkflows
}

func NewSubscriptionsHandler(log logger.Provider, conn *connection.Connection) *SubscriptionsHandler {
	subscriptionService, err := service.NewSubscriptionService(log, conn)
	if err != nil {
		panic(err)
	}

	return &SubscriptionsHandler{
		log,
		subscriptionService,
	}
}

func orgIDFromContext(ctx *gin.Context) (string, error) {
	orgID := ctx.GetString(common.CtxKeys.OrgID)
	if orgID == "" {
		orgID = ctx.Param("orgID")
	}

	if orgID == "" {
		return "", web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	return orgID, nil
}

func (h *SubscriptionsHandler) CreateSubscription(ctx *gin.Context) error {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return err
	}

	var req domain.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.OrgID = orgID

	result, err := h.subscriptionService.CreateSubscription(ctx, &req)
	if err != nil {
		if errors.Is(err, lfFirestore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *SubscriptionsHandler) UpgradeSubscription(ctx *gin.Context) error {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return err
	}

	var req domain.UpgradeSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	req.OrgID = orgID

	result, err := h.subscriptionService.UpgradeSubscription(ctx, &req)
	if err != nil {
		if errors.Is(err, lfFirestore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *SubscriptionsHandler) CancelSubscription(ctx *gin.Context) error {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return err
	}

	result, err := h.subscriptionService.CancelSubscription(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSubscription) || errors.Is(err, lfFirestore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *SubscriptionsHandler) GetSubscription(ctx *gin.Context) error {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return err
	}

	subscription, err := h.subscriptionService.GetSubscription(ctx, orgID)
	if err != nil {
		if errors.Is(err, lfFirestore.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, subscription, http.StatusOK)
}

func (h *SubscriptionsHandler) ListInvoices(ctx *gin.Context) error {
	orgID, err := orgIDFromContext(ctx)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	invoices, err := h.subscriptionService.ListInvoices(ctx, orgID, limit)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoices, http.StatusOK)
}

// Cron-triggered endpoints. Auth is handled by the CronSecret middleware at
// route registration.

func (h *SubscriptionsHandler) DecrementPromoMonths(ctx *gin.Context) error {
	if err := h.subscriptionService.DecrementPromoMonths(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *SubscriptionsHandler) SendUsageAlerts(ctx *gin.Context) error {
	if err := h.subscriptionService.SendUsageAlerts(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *SubscriptionsHandler) ReconcileCanceledSubscriptions(ctx *gin.Context) error {
	if err := h.subscriptionService.ReconcileCanceledSubscriptions(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
