//go:generate mockery --name Mailer --output ./mocks
package mailer

import (
	"context"
	"fmt"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/leafrank/backend/common"
)

const (
	noReplyName  = "LeafRank"
	noReplyEmail = "noreply@leafrank.com"

	CategoryBilling = "billing"
	CategoryPromo   = "promo"
	CategoryUsage   = "usage"
)

// SimpleNotification holds the dynamic template data for the generic
// notification email.
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	Categories []string
}

type Mailer interface {
	SendSimpleNotification(ctx context.Context, sn *SimpleNotification, email string) error
}

type SendGridMailer struct {
	apiKey     string
	templateID string
}

// NewSendGridMailer reads the SendGrid credentials from the environment.
func NewSendGridMailer() (*SendGridMailer, error) {
	apiKey := common.GetEnv("SENDGRID_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	return &SendGridMailer{
		apiKey:     apiKey,
		templateID: common.GetEnv("SENDGRID_SIMPLE_NOTIFICATION_TEMPLATE", "d-simple-notification"),
	}, nil
}

func (s *SendGridMailer) SendSimpleNotification(ctx context.Context, sn *SimpleNotification, email string) error {
	m := s.buildMail(sn, email)

	request := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

func (s *SendGridMailer) buildMail(sn *SimpleNotification, email string) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetTemplateID(s.templateID)
	m.SetFrom(mail.NewEmail(noReplyName, noReplyEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", email))

	for _, cc := range sn.CCs {
		if cc != email {
			personalization.AddCCs(mail.NewEmail("", cc))
		}
	}

	personalization.SetDynamicTemplateData("subject", sn.Subject)
	personalization.SetDynamicTemplateData("preheader", sn.Preheader)
	personalization.SetDynamicTemplateData("body", sn.Body)

	m.AddPersonalizations(personalization)

	m.AddCategories(sn.Categories...)

	return m
}
