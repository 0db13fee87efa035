package services

import (
	"fmt"
	"os"

	"virtualoffice-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Notifier sends best-effort SMS notices. Every send is fire-and-forget:
// delivery failure is logged and never surfaced to the triggering operation.
type Notifier struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &Notifier{
		client: client,
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
		logger: logger,
	}
}

// NotifyLogPublished tells the customer a new work record is visible on
// their portal. Skipped silently when the customer has no phone or Twilio
// is not configured.
func (n *Notifier) NotifyLogPublished(customer models.Customer, log models.ServiceLog) {
	if customer.Phone == "" {
		return
	}
	body := fmt.Sprintf("%s様 %s分の作業記録を公開しました。ポータルからご確認ください。",
		customer.CompanyName, log.WorkDate.Format("2006/01/02"))
	n.send(customer.Phone, body)
}

// NotifyAdmin sends an operational notice to the configured admin phone.
func (n *Notifier) NotifyAdmin(body string) {
	to := os.Getenv("ADMIN_PHONE")
	if to == "" {
		return
	}
	n.send(to, body)
}

func (n *Notifier) send(to, body string) {
	if n.client == nil || n.from == "" {
		n.logger.Debug("sms not configured, skipping notification", zap.String("to", to))
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		n.logger.Warn("failed to send sms", zap.String("to", to), zap.Error(err))
	}
}
