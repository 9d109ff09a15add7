package inquiry

import (
	"context"
	"fmt"
	"strings"

	"github.com/eliksir/quote-service/internal/domain/models"
	"github.com/eliksir/quote-service/pkg/clients/whatsapp"
)

// WhatsAppNotifier announces new inquiries to the owner's WhatsApp number.
type WhatsAppNotifier struct {
	client whatsapp.Client
	to     string
}

func NewWhatsAppNotifier(client whatsapp.Client, to string) *WhatsAppNotifier {
	return &WhatsAppNotifier{client: client, to: to}
}

func (n *WhatsAppNotifier) Name() string { return "whatsapp" }

func (n *WhatsAppNotifier) Publish(ctx context.Context, inquiry models.Inquiry) error {
	if _, err := n.client.SendTextMessage(ctx, whatsapp.SendTextMessageRequest{
		To:   n.to,
		Body: FormatNotification(inquiry),
	}); err != nil {
		return fmt.Errorf("notify owner: %w", err)
	}
	return nil
}

// FormatNotification renders the message body sent to the owner.
func FormatNotification(inquiry models.Inquiry) string {
	var sb strings.Builder
	sb.WriteString("🍸 Nowe zapytanie\n")
	fmt.Fprintf(&sb, "Od: %s <%s>\n", inquiry.Name, inquiry.Email)
	if inquiry.Phone != "" {
		fmt.Fprintf(&sb, "Tel: %s\n", inquiry.Phone)
	}
	if inquiry.EventDate != "" {
		fmt.Fprintf(&sb, "Data: %s\n", inquiry.EventDate)
	}
	if inquiry.GuestCount > 0 {
		fmt.Fprintf(&sb, "Goście: %d\n", inquiry.GuestCount)
	}
	if q := inquiry.Quote; q != nil {
		fmt.Fprintf(&sb, "Wycena: %s, %d gości, %d PLN (%d PLN/os.)\n",
			q.OfferName, q.Guests, q.TotalAfterDiscount, q.PricePerGuest)
	}
	sb.WriteString("\n")
	sb.WriteString(inquiry.Message)
	return sb.String()
}
