package mid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCronRequest(authHeader string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/tasks/subscriptions/promo-decrement", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}

	return r
}

func TestVerifyCronRequest(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		authHeader  string
		expectedErr error
	}{
		{
			name:        "missing secret is a configuration error",
			secret:      "",
			authHeader:  "Bearer whatever",
			expectedErr: ErrCronSecretNotConfigured,
		},
		{
			name:        "missing authorization header",
			secret:      "s3cret",
			authHeader:  "",
			expectedErr: ErrInvalidCronToken,
		},
		{
			name:        "wrong token",
			secret:      "s3cret",
			authHeader:  "Bearer nope",
			expectedErr: ErrInvalidCronToken,
		},
		{
			name:        "basic scheme is rejected",
			secret:      "s3cret",
			authHeader:  "Basic s3cret",
			expectedErr: ErrInvalidCronToken,
		},
		{
			name:        "double space is rejected",
			secret:      "s3cret",
			authHeader:  "Bearer  s3cret",
			expectedErr: ErrInvalidCronToken,
		},
		{
			name:       "exact bearer token passes",
			secret:     "s3cret",
			authHeader: "Bearer s3cret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(cronSecretEnv, tt.secret)

			err := verifyCronRequest(newCronRequest(tt.authHeader))
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v, want %v", err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
