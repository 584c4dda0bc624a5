// services/notify.go
package services

import (
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends payment links to clients over SMS or WhatsApp.
type NotifyService struct {
	client *twilio.RestClient
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// Enabled reports whether Twilio credentials are configured. Sending is
// best effort either way; payment collection never depends on it.
func (s *NotifyService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != ""
}

// SendPaymentLink texts the hosted payment link to the client.
func (s *NotifyService) SendPaymentLink(name, phone, linkURL string) {
	if !s.Enabled() {
		return
	}

	message := "Hi " + name + ", please complete your salon payment here: " + linkURL

	// Use WhatsApp if the phone is already in E.164 format
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	} else if !strings.HasPrefix(phone, "+") {
		to = "+91" + phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send payment link to %s: %v", phone, err)
	} else if resp.Sid != nil {
		log.Printf("Payment link sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Payment link sent to %s, but no SID returned", phone)
	}
}
