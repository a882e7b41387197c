// Package gateway wraps the Authorize.net JSON API behind the narrow
// PaymentGateway interface the subscription workflow consumes.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/leafrank/backend/billing/gateway/domain"
	"github.com/leafrank/backend/common"
)

const (
	productionEndpoint = "https://api.authorize.net/xml/v1/request.api"
	sandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"

	resultOk = "Ok"

	// ARB has no notion of an open-ended subscription; the documented
	// convention for "until canceled" is 9999 occurrences.
	ongoingOccurrences = 9999
)

type Client struct {
	http           *resty.Client
	apiLoginID     string
	transactionKey string
}

// NewClient builds an Authorize.net client from environment credentials.
// The sandbox endpoint is used outside production.
func NewClient() (*Client, error) {
	apiLoginID := common.GetEnv("AUTHNET_API_LOGIN_ID", "")
	transactionKey := common.GetEnv("AUTHNET_TRANSACTION_KEY", "")

	if apiLoginID == "" || transactionKey == "" {
		return nil, domain.ErrMissingCredentials
	}

	endpoint := sandboxEndpoint
	if common.Production {
		endpoint = productionEndpoint
	}

	return &Client{
		http:           resty.New().SetBaseURL(endpoint).SetTimeout(30 * time.Second),
		apiLoginID:     apiLoginID,
		transactionKey: transactionKey,
	}, nil
}

// NewClientWithEndpoint is used by tests to point the client at a stub server.
func NewClientWithEndpoint(endpoint, apiLoginID, transactionKey string) *Client {
	return &Client{
		http:           resty.New().SetBaseURL(endpoint).SetTimeout(10 * time.Second),
		apiLoginID:     apiLoginID,
		transactionKey: transactionKey,
	}
}

type merchantAuthentication struct {
	Name           string `json:"name"`
	TransactionKey string `json:"transactionKey"`
}

type apiMessage struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

type apiMessages struct {
	ResultCode string       `json:"resultCode"`
	Message    []apiMessage `json:"message"`
}

func (m apiMessages) err() error {
	if m.ResultCode == resultOk {
		return nil
	}

	if len(m.Message) > 0 {
		return fmt.Errorf("gateway error %s: %s", m.Message[0].Code, m.Message[0].Text)
	}

	return fmt.Errorf("gateway error: result code %s", m.ResultCode)
}

// post sends a request envelope and decodes the response body into out.
// Authorize.net prefixes responses with a UTF-8 BOM, which the decoder
// rejects, so it is stripped first.
func (c *Client) post(ctx context.Context, body interface{}, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	raw := strings.TrimPrefix(string(resp.Body()), "\ufeff")

	return json.Unmarshal([]byte(raw), out)
}

type createCustomerProfileRequest struct {
	CreateCustomerProfileRequest struct {
		MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
		Profile                struct {
			Description     string `json:"description,omitempty"`
			PaymentProfiles struct {
				CustomerType string `json:"customerType"`
				BillTo       struct {
					FirstName string `json:"firstName"`
					LastName  string `json:"lastName"`
					Company   string `json:"company,omitempty"`
					Address   string `json:"address"`
					City      string `json:"city"`
					State     string `json:"state"`
					Zip       string `json:"zip"`
					Country   string `json:"country"`
				} `json:"billTo"`
				Payment struct {
					OpaqueData domain.OpaqueData `json:"opaqueData"`
				} `json:"payment"`
			} `json:"paymentProfiles"`
		} `json:"profile"`
		ValidationMode string `json:"validationMode"`
	} `json:"createCustomerProfileRequest"`
}

type createCustomerProfileResponse struct {
	CustomerProfileID            string      `json:"customerProfileId"`
	CustomerPaymentProfileIDList []string    `json:"customerPaymentProfileIdList"`
	Messages                     apiMessages `json:"messages"`
}

// CreateCustomerProfile creates the gateway customer and payment profiles
// from the tokenized payment blob and billing address.
func (c *Client) CreateCustomerProfile(ctx context.Context, billTo domain.BillTo, opaqueData domain.OpaqueData) (*domain.CustomerProfile, error) {
	var req createCustomerProfileRequest

	req.CreateCustomerProfileRequest.MerchantAuthentication = c.auth()
	req.CreateCustomerProfileRequest.ValidationMode = c.validationMode()

	pp := &req.CreateCustomerProfileRequest.Profile.PaymentProfiles
	pp.CustomerType = "business"
	pp.BillTo.FirstName = billTo.FirstName
	pp.BillTo.LastName = billTo.LastName
	pp.BillTo.Company = billTo.Company
	pp.BillTo.Address = billTo.Address
	pp.BillTo.City = billTo.City
	pp.BillTo.State = billTo.State
	pp.BillTo.Zip = billTo.Zip
	pp.BillTo.Country = billTo.Country
	pp.Payment.OpaqueData = opaqueData

	var resp createCustomerProfileResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return nil, err
	}

	if err := resp.Messages.err(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileCreateFailed, err)
	}

	if resp.CustomerProfileID == "" || len(resp.CustomerPaymentProfileIDList) == 0 {
		return nil, domain.ErrProfileCreateFailed
	}

	return &domain.CustomerProfile{
		CustomerProfileID:        resp.CustomerProfileID,
		CustomerPaymentProfileID: resp.CustomerPaymentProfileIDList[0],
	}, nil
}

type arbCreateSubscriptionRequest struct {
	ARBCreateSubscriptionRequest struct {
		MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
		Subscription           struct {
			Name            string `json:"name"`
			PaymentSchedule struct {
				Interval struct {
					Length int    `json:"length"`
					Unit   string `json:"unit"`
				} `json:"interval"`
				StartDate        string `json:"startDate"`
				TotalOccurrences int    `json:"totalOccurrences"`
			} `json:"paymentSchedule"`
			Amount  string `json:"amount"`
			Profile struct {
				CustomerProfileID        string `json:"customerProfileId"`
				CustomerPaymentProfileID string `json:"customerPaymentProfileId"`
			} `json:"profile"`
		} `json:"subscription"`
	} `json:"ARBCreateSubscriptionRequest"`
}

type arbCreateSubscriptionResponse struct {
	SubscriptionID string      `json:"subscriptionId"`
	Messages       apiMessages `json:"messages"`
}

// CreateSubscriptionFromProfile starts a monthly recurring subscription
// billed against the stored payment profile.
func (c *Client) CreateSubscriptionFromProfile(ctx context.Context, profile *domain.CustomerProfile, name string, amount int64) (string, error) {
	var req arbCreateSubscriptionRequest

	req.ARBCreateSubscriptionRequest.MerchantAuthentication = c.auth()

	sub := &req.ARBCreateSubscriptionRequest.Subscription
	sub.Name = name
	sub.PaymentSchedule.Interval.Length = 1
	sub.PaymentSchedule.Interval.Unit = "months"
	sub.PaymentSchedule.StartDate = time.Now().UTC().Format("2006-01-02")
	sub.PaymentSchedule.TotalOccurrences = ongoingOccurrences
	sub.Amount = formatAmount(amount)
	sub.Profile.CustomerProfileID = profile.CustomerProfileID
	sub.Profile.CustomerPaymentProfileID = profile.CustomerPaymentProfileID

	var resp arbCreateSubscriptionResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return "", err
	}

	if err := resp.Messages.err(); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrSubscriptionDeclined, err)
	}

	if resp.SubscriptionID == "" {
		return "", domain.ErrSubscriptionDeclined
	}

	return resp.SubscriptionID, nil
}

type arbUpdateSubscriptionRequest struct {
	ARBUpdateSubscriptionRequest struct {
		MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
		SubscriptionID         string                 `json:"subscriptionId"`
		Subscription           struct {
			Amount string `json:"amount"`
		} `json:"subscription"`
	} `json:"ARBUpdateSubscriptionRequest"`
}

type arbResponse struct {
	Messages apiMessages `json:"messages"`
}

// UpdateARBSubscription changes the recurring amount on the current billing
// cycle. No pro-ration: the gateway charges the new amount on the existing
// cycle date.
func (c *Client) UpdateARBSubscription(ctx context.Context, subscriptionID string, newAmount int64) error {
	if subscriptionID == "" {
		return domain.ErrMissingSubscription
	}

	var req arbUpdateSubscriptionRequest

	req.ARBUpdateSubscriptionRequest.MerchantAuthentication = c.auth()
	req.ARBUpdateSubscriptionRequest.SubscriptionID = subscriptionID
	req.ARBUpdateSubscriptionRequest.Subscription.Amount = formatAmount(newAmount)

	var resp arbResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return err
	}

	return resp.Messages.err()
}

type arbCancelSubscriptionRequest struct {
	ARBCancelSubscriptionRequest struct {
		MerchantAuthentication merchantAuthentication `json:"merchantAuthentication"`
		SubscriptionID         string                 `json:"subscriptionId"`
	} `json:"ARBCancelSubscriptionRequest"`
}

// CancelARBSubscription cancels the recurring subscription on the gateway.
func (c *Client) CancelARBSubscription(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return domain.ErrMissingSubscription
	}

	var req arbCancelSubscriptionRequest

	req.ARBCancelSubscriptionRequest.MerchantAuthentication = c.auth()
	req.ARBCancelSubscriptionRequest.SubscriptionID = subscriptionID

	var resp arbResponse
	if err := c.post(ctx, req, &resp); err != nil {
		return err
	}

	return resp.Messages.err()
}

func (c *Client) auth() merchantAuthentication {
	return merchantAuthentication{
		Name:           c.apiLoginID,
		TransactionKey: c.transactionKey,
	}
}

func (c *Client) validationMode() string {
	if common.Production {
		return "liveMode"
	}

	return "testMode"
}

func formatAmount(amount int64) string {
	return fmt.Sprintf("%d.00", amount)
}
