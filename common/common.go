package common

import (
	"os"
)

var (
	// CtxKeys are the gin context keys set by the auth middlewares.
	CtxKeys struct {
		UserID string
		Email  string
		Name   string
		OrgID  string
		Claims string
		UID    string
	}

	ProjectID string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if the app is running the production backend on appengine.
	Production bool

	// IsLocalhost flag indicating the app is running locally.
	IsLocalhost bool
)

const (
	// TestProjectID is the firestore emulator project used by DAL tests.
	TestProjectID = "leafrank-test"
)

func init() {
	CtxKeys.UserID = "userId"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.OrgID = "orgId"
	CtxKeys.Claims = "claims"
	CtxKeys.UID = "uid"

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "leafrank-dev")
	GAEService = GetEnv("GAE_SERVICE", "backend")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")
	Env = GetEnv("ENV", "development")

	Production = Env == "production"
	IsLocalhost = GAEVersion == "localhost"
}

// GetEnv returns the env variable value for the given key,
// or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
