package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafrank/backend/framework/web"
	serviceMocks "github.com/leafrank/backend/subscription/service/mocks"
)

func getContext() *gin.Context {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/tasks/subscriptions", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func TestSubscriptionsHandler_CronHandlers(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		handler func(h *SubscriptionsHandler, ctx *gin.Context) error
	}{
		{
			name:   "decrement promo months",
			method: "DecrementPromoMonths",
			handler: func(h *SubscriptionsHandler, ctx *gin.Context) error {
				return h.DecrementPromoMonths(ctx)
			},
		},
		{
			name:   "send usage alerts",
			method: "SendUsageAlerts",
			handler: func(h *SubscriptionsHandler, ctx *gin.Context) error {
				return h.SendUsageAlerts(ctx)
			},
		},
		{
			name:   "reconcile canceled subscriptions",
			method: "ReconcileCanceledSubscriptions",
			handler: func(h *SubscriptionsHandler, ctx *gin.Context) error {
				return h.ReconcileCanceledSubscriptions(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" success", func(t *testing.T) {
			ctx := getContext()
			service := serviceMocks.NewSubscriptionWorkflows(t)
			service.On(tt.method, ctx).Return(nil).Once()

			h := &SubscriptionsHandler{subscriptionService: service}

			err := tt.handler(h, ctx)
			assert.NoError(t, err)
		})

		t.Run(tt.name+" failure", func(t *testing.T) {
			ctx := getContext()
			jobErr := errors.New("firestore unavailable")

			service := serviceMocks.NewSubscriptionWorkflows(t)
			service.On(tt.method, ctx).Return(jobErr).Once()

			h := &SubscriptionsHandler{subscriptionService: service}

			err := tt.handler(h, ctx)
			require.Error(t, err)

			// the job error must surface as a request error so the body
			// carries the message instead of an empty object
			var webErr *web.Error
			require.ErrorAs(t, err, &webErr)
			assert.Equal(t, http.StatusInternalServerError, webErr.Status)
			assert.Equal(t, jobErr, webErr.Err)
		})
	}
}
