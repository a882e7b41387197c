package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leafrank/backend/billing/gateway/domain"
)

func newStubServer(t *testing.T, handler func(t *testing.T, body map[string]interface{}) interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		resp := handler(t, body)

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
}

func okMessages() map[string]interface{} {
	return map[string]interface{}{
		"resultCode": "Ok",
		"message":    []map[string]string{{"code": "I00001", "text": "Successful."}},
	}
}

func errorMessages(code, text string) map[string]interface{} {
	return map[string]interface{}{
		"resultCode": "Error",
		"message":    []map[string]string{{"code": code, "text": text}},
	}
}

func TestCreateCustomerProfile(t *testing.T) {
	ctx := context.Background()

	billTo := domain.BillTo{
		FirstName: "Dana",
		LastName:  "Whitaker",
		Company:   "Thrive Syracuse",
		Address:   "411 S Salina St",
		City:      "Syracuse",
		State:     "NY",
		Zip:       "13202",
		Country:   "US",
	}

	opaque := domain.OpaqueData{
		DataDescriptor: "COMMON.ACCEPT.INAPP.PAYMENT",
		DataValue:      "eyJjb2RlIjoiNTBfMl8w",
	}

	t.Run("success", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			req, ok := body["createCustomerProfileRequest"].(map[string]interface{})
			assert.True(t, ok)

			auth := req["merchantAuthentication"].(map[string]interface{})
			assert.Equal(t, "login-id", auth["name"])
			assert.Equal(t, "txn-key", auth["transactionKey"])

			return map[string]interface{}{
				"customerProfileId":            "920441557",
				"customerPaymentProfileIdList": []string{"918121194"},
				"messages":                     okMessages(),
			}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		profile, err := client.CreateCustomerProfile(ctx, billTo, opaque)
		assert.NoError(t, err)
		assert.Equal(t, "920441557", profile.CustomerProfileID)
		assert.Equal(t, "918121194", profile.CustomerPaymentProfileID)
	})

	t.Run("gateway error", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			return map[string]interface{}{
				"messages": errorMessages("E00039", "A duplicate record with ID 920441557 already exists."),
			}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		profile, err := client.CreateCustomerProfile(ctx, billTo, opaque)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, domain.ErrProfileCreateFailed)
		assert.Contains(t, err.Error(), "E00039")
	})
}

func TestCreateSubscriptionFromProfile(t *testing.T) {
	ctx := context.Background()

	profile := &domain.CustomerProfile{
		CustomerProfileID:        "920441557",
		CustomerPaymentProfileID: "918121194",
	}

	t.Run("success", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			req := body["ARBCreateSubscriptionRequest"].(map[string]interface{})
			sub := req["subscription"].(map[string]interface{})

			assert.Equal(t, "LeafRank Pro", sub["name"])
			assert.Equal(t, "99.00", sub["amount"])

			schedule := sub["paymentSchedule"].(map[string]interface{})
			interval := schedule["interval"].(map[string]interface{})
			assert.Equal(t, float64(1), interval["length"])
			assert.Equal(t, "months", interval["unit"])
			assert.Equal(t, float64(9999), schedule["totalOccurrences"])

			prof := sub["profile"].(map[string]interface{})
			assert.Equal(t, "920441557", prof["customerProfileId"])
			assert.Equal(t, "918121194", prof["customerPaymentProfileId"])

			return map[string]interface{}{
				"subscriptionId": "7412345",
				"messages":       okMessages(),
			}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		subscriptionID, err := client.CreateSubscriptionFromProfile(ctx, profile, "LeafRank Pro", 99)
		assert.NoError(t, err)
		assert.Equal(t, "7412345", subscriptionID)
	})

	t.Run("declined", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			return map[string]interface{}{
				"messages": errorMessages("E00012", "A duplicate subscription already exists."),
			}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		subscriptionID, err := client.CreateSubscriptionFromProfile(ctx, profile, "LeafRank Pro", 99)
		assert.Empty(t, subscriptionID)
		assert.ErrorIs(t, err, domain.ErrSubscriptionDeclined)
	})
}

func TestUpdateARBSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			req := body["ARBUpdateSubscriptionRequest"].(map[string]interface{})
			assert.Equal(t, "7412345", req["subscriptionId"])

			sub := req["subscription"].(map[string]interface{})
			assert.Equal(t, "249.00", sub["amount"])

			return map[string]interface{}{"messages": okMessages()}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		err := client.UpdateARBSubscription(ctx, "7412345", 249)
		assert.NoError(t, err)
	})

	t.Run("missing subscription id", func(t *testing.T) {
		client := NewClientWithEndpoint("http://localhost:1", "login-id", "txn-key")

		err := client.UpdateARBSubscription(ctx, "", 249)
		assert.ErrorIs(t, err, domain.ErrMissingSubscription)
	})
}

func TestCancelARBSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			req := body["ARBCancelSubscriptionRequest"].(map[string]interface{})
			assert.Equal(t, "7412345", req["subscriptionId"])

			return map[string]interface{}{"messages": okMessages()}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		err := client.CancelARBSubscription(ctx, "7412345")
		assert.NoError(t, err)
	})

	t.Run("gateway error", func(t *testing.T) {
		srv := newStubServer(t, func(t *testing.T, body map[string]interface{}) interface{} {
			return map[string]interface{}{
				"messages": errorMessages("E00035", "The subscription cannot be found."),
			}
		})
		defer srv.Close()

		client := NewClientWithEndpoint(srv.URL, "login-id", "txn-key")

		err := client.CancelARBSubscription(ctx, "7412345")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "E00035")
	})

	t.Run("missing subscription id", func(t *testing.T) {
		client := NewClientWithEndpoint("http://localhost:1", "login-id", "txn-key")

		err := client.CancelARBSubscription(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingSubscription)
	})
}
