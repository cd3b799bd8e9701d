// utils/telegram.go
package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nurmuhammad-fullstack/HotDog/models"
)

const telegramTimeout = 10 * time.Second

// paymentNames maps payment-method labels to what the shop operator sees
// in the notification. Unmapped labels fall through unchanged.
var paymentNames = map[string]string{
	"cash":  "Cash",
	"click": "Click",
	"payme": "Payme",
	"card":  "Card",
}

// TelegramService forwards order notifications to a Telegram chat via the
// bot sendMessage endpoint. Delivery is best-effort: every failure is
// logged and reported as false, never as an error.
type TelegramService struct {
	token  string
	chatID string
	apiURL string
	client *http.Client
}

// NewTelegramService reads TELEGRAM_TOKEN and TELEGRAM_CHAT_ID from the
// environment. Either being absent disables sending entirely.
func NewTelegramService() *TelegramService {
	return &TelegramService{
		token:  os.Getenv("TELEGRAM_TOKEN"),
		chatID: os.Getenv("TELEGRAM_CHAT_ID"),
		apiURL: "https://api.telegram.org",
		client: &http.Client{Timeout: telegramTimeout},
	}
}

// Send posts the message to the configured chat. Returns false without any
// network I/O when the service is unconfigured, and false on any transport
// error or non-200 response.
func (ts *TelegramService) Send(ctx context.Context, text string) bool {
	if ts.token == "" || ts.chatID == "" {
		log.Println("Telegram not configured, skipping notification")
		return false
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    ts.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		log.Printf("Telegram error: %v", err)
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", ts.apiURL, ts.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Printf("Telegram error: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.client.Do(req)
	if err != nil {
		log.Printf("Telegram error: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Telegram responded with status %d", resp.StatusCode)
		return false
	}
	return true
}

// PaymentMethodLabel returns the human-readable name for a payment-method
// label, or the raw label when it is not in the fixed table.
func PaymentMethodLabel(method string) string {
	if name, ok := paymentNames[method]; ok {
		return name
	}
	return method
}

// FormatAmount renders an integer so'm amount with thousands separators,
// e.g. 36000 -> "36,000".
func FormatAmount(amount int) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatOrderMessage builds the HTML notification text for a new order:
// short order id (first 8 characters), customer name/phone, one line per
// item with its computed subtotal, the order total as submitted, the
// payment label and the delivery address. Optional address parts appear
// on their own lines only when non-empty.
func FormatOrderMessage(order models.Order) string {
	shortID := order.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	var b strings.Builder
	b.WriteString("\U0001F32D <b>NEW ORDER!</b>\n\n")
	fmt.Fprintf(&b, "\U0001F4CB <b>Order:</b> #%s\n", shortID)
	fmt.Fprintf(&b, "\U0001F464 <b>Customer:</b> %s\n", order.UserName)
	fmt.Fprintf(&b, "\U0001F4DE <b>Phone:</b> %s\n\n", order.UserPhone)

	b.WriteString("\U0001F37D <b>Items:</b>\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  • %s x%d = %s so'm\n", item.Name, item.Quantity, FormatAmount(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n\U0001F4B0 <b>Total:</b> %s so'm\n", FormatAmount(order.Total))
	fmt.Fprintf(&b, "\U0001F4B3 <b>Payment:</b> %s\n\n", PaymentMethodLabel(order.PaymentMethod))

	b.WriteString("\U0001F4CD <b>Address:</b>\n")
	fmt.Fprintf(&b, "%s, %s\n", order.Address.Street, order.Address.House)
	if order.Address.Apartment != "" {
		fmt.Fprintf(&b, "Apartment: %s\n", order.Address.Apartment)
	}
	if order.Address.Entrance != "" {
		fmt.Fprintf(&b, "Entrance: %s\n", order.Address.Entrance)
	}
	if order.Address.Floor != "" {
		fmt.Fprintf(&b, "Floor: %s\n", order.Address.Floor)
	}
	if order.Address.Comment != "" {
		fmt.Fprintf(&b, "Comment: %s\n", order.Address.Comment)
	}

	return b.String()
}
