package firebase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/leafrank/backend/common"
)

// App is the shared Firebase app used for dashboard token verification.
var App *firebase.App

var (
	errNoAuthHeader      = errors.New("no authorization header found")
	errInvalidAuthHeader = errors.New("invalid authorization header found")
)

func init() {
	ctx := context.Background()

	var err error

	App, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		log.Fatalln(err)
	}
}

func tokenAuthTime(token *auth.Token) (*time.Time, error) {
	if authTime, prs := token.Claims["auth_time"]; prs {
		if v, ok := authTime.(float64); ok {
			t := time.Unix(int64(v), 0)
			return &t, nil
		}
	}

	return nil, errors.New("invalid auth token")
}

// VerifyIDToken verifies the request's bearer ID token against Firebase auth.
func VerifyIDToken(ctx *gin.Context) (*auth.Token, *time.Time, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil, errNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, nil, errInvalidAuthHeader
	}

	idToken := strings.Split(authHeader, " ")[1]

	authClient, err := App.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}

	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, err
	}

	authTime, err := tokenAuthTime(token)
	if err != nil {
		return nil, nil, err
	}

	return token, authTime, nil
}

// VerifyIDTokenAndCheckRevoked verifies the bearer token and rejects revoked
// sessions. Used when the last login is older than the refresh window.
func VerifyIDTokenAndCheckRevoked(ctx *gin.Context) error {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return errNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return errInvalidAuthHeader
	}

	authClient, err := App.Auth(ctx)
	if err != nil {
		return err
	}

	idToken := strings.Split(authHeader, " ")[1]
	if _, err := authClient.VerifyIDTokenAndCheckRevoked(ctx, idToken); err != nil {
		return err
	}

	return nil
}
