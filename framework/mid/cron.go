package mid

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafrank/backend/common"
	"github.com/leafrank/backend/framework/web"
)

const cronSecretEnv = "CRON_SECRET"

var (
	ErrCronSecretNotConfigured = errors.New("cron secret is not configured")
	ErrInvalidCronToken        = errors.New("invalid cron token")
)

// CronSecret guards the scheduled-job endpoints. The external scheduler
// authenticates with a shared bearer secret; a missing secret is a deployment
// configuration error, anything but an exact "Bearer {secret}" header is
// unauthorized.
func CronSecret() web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if err := verifyCronRequest(ctx.Request); err != nil {
				if errors.Is(err, ErrCronSecretNotConfigured) {
					return web.NewRequestError(err, http.StatusInternalServerError)
				}

				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

// verifyCronRequest returns nil when the request carries the exact cron
// bearer token.
func verifyCronRequest(r *http.Request) error {
	secret := common.GetEnv(cronSecretEnv, "")
	if secret == "" {
		return ErrCronSecretNotConfigured
	}

	authHeader := r.Header.Get("Authorization")
	expected := "Bearer " + secret

	if subtle.ConstantTimeCompare([]byte(authHeader), []byte(expected)) != 1 {
		return ErrInvalidCronToken
	}

	return nil
}
