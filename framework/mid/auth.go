package mid

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leafrank/backend/common"
	fb "github.com/leafrank/backend/firebase"
	"github.com/leafrank/backend/framework/connection"
	"github.com/leafrank/backend/framework/web"
	"github.com/leafrank/backend/logger"
)

const (
	dayDuration                  = 24 * time.Hour
	MaxValidRefreshTokenDuration = 2 * dayDuration
)

// Auth errors
var (
	ErrForbidden    = errors.New("forbidden operation")
	ErrUnauthorized = errors.New("unauthorized operation")
)

// AuthRequired middleware that auth requests coming from the dashboard app.
func AuthRequired(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, authTime, err := fb.VerifyIDToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set(common.CtxKeys.Claims, claims)
			ctx.Set(common.CtxKeys.UID, token.UID)

			// If it's been too long since the user last logged in, check if token is revoked
			if time.Since(*authTime) > MaxValidRefreshTokenDuration {
				if err := fb.VerifyIDTokenAndCheckRevoked(ctx); err != nil {
					return web.NewRequestError(err, http.StatusUnauthorized)
				}
			}

			email, ok := claims["email"]
			if !ok {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			emailStr := email.(string)
			ctx.Set(common.CtxKeys.Email, strings.ToLower(emailStr))

			if name, ok := claims["name"]; ok {
				ctx.Set(common.CtxKeys.Name, name.(string))
			}

			l.SetLabels(map[string]string{
				"email": emailStr,
				"uid":   token.UID,
			})

			conn.FirestoreWithContext(ctx)

			userID, ok := claims["userId"]
			if !ok {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			ctx.Set(common.CtxKeys.UserID, userID)

			return handler(ctx)
		}

		return h
	}

	return f
}

// AuthOrgRequired middleware validates that the user belongs to the
// organization, sets the orgID on the context if successful.
func AuthOrgRequired() web.Middleware {
	return func(handler web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			orgID := ctx.Param("orgID")
			if orgID == "" {
				return web.NewRequestError(errors.New("missing organization id"), http.StatusBadRequest)
			}

			l := logger.FromContext(ctx)
			l.SetLabel("orgId", orgID)

			claims := ctx.GetStringMap(common.CtxKeys.Claims)
			if userOrgID, ok := claims["orgId"]; !ok || userOrgID.(string) != orgID {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			ctx.Set(common.CtxKeys.OrgID, orgID)

			return handler(ctx)
		}
	}
}
