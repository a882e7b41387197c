package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMail(t *testing.T) {
	s := &SendGridMailer{apiKey: "SG.test", templateID: "d-simple-notification"}

	sn := &SimpleNotification{
		Subject:    "Your Growth subscription is active",
		Preheader:  "Welcome to Growth",
		Body:       "Thanks for upgrading.",
		CCs:        []string{"owner@thrivedispensary.com", "billing@thrivedispensary.com"},
		Categories: []string{CategoryBilling},
	}

	m := s.buildMail(sn, "billing@thrivedispensary.com")

	assert.Equal(t, "d-simple-notification", m.TemplateID)
	assert.Equal(t, noReplyEmail, m.From.Address)
	assert.Equal(t, []string{CategoryBilling}, m.Categories)

	if assert.Len(t, m.Personalizations, 1) {
		p := m.Personalizations[0]

		if assert.Len(t, p.To, 1) {
			assert.Equal(t, "billing@thrivedispensary.com", p.To[0].Address)
		}

		// the recipient is not CC'd to itself
		if assert.Len(t, p.CC, 1) {
			assert.Equal(t, "owner@thrivedispensary.com", p.CC[0].Address)
		}

		assert.Equal(t, "Your Growth subscription is active", p.DynamicTemplateData["subject"])
		assert.Equal(t, "Welcome to Growth", p.DynamicTemplateData["preheader"])
		assert.Equal(t, "Thanks for upgrading.", p.DynamicTemplateData["body"])
	}
}

func TestBuildMailNoCategories(t *testing.T) {
	s := &SendGridMailer{apiKey: "SG.test", templateID: "d-simple-notification"}

	m := s.buildMail(&SimpleNotification{Subject: "s", Body: "b"}, "owner@thrivedispensary.com")

	assert.Empty(t, m.Categories)
}
