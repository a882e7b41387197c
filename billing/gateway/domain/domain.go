package domain

import "errors"

var (
	ErrMissingCredentials   = errors.New("authorize.net credentials are not configured")
	ErrMissingSubscription  = errors.New("missing gateway subscription id")
	ErrProfileCreateFailed  = errors.New("customer profile creation failed")
	ErrSubscriptionDeclined = errors.New("gateway subscription request declined")
)

// BillTo is the billing address captured at checkout.
type BillTo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// OpaqueData is the tokenized payment blob produced by the Accept.js payment
// form. The raw card never reaches this service.
type OpaqueData struct {
	DataDescriptor string `json:"dataDescriptor"`
	DataValue      string `json:"dataValue"`
}

// CustomerProfile references the gateway-side customer and payment profiles.
type CustomerProfile struct {
	CustomerProfileID        string `json:"customerProfileId" firestore:"customerProfileId"`
	CustomerPaymentProfileID string `json:"customerPaymentProfileId" firestore:"customerPaymentProfileId"`
}
