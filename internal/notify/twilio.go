package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/intake"
	"go.uber.org/zap"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioDispatcher posts WhatsApp messages through Twilio's REST API with
// HTTP basic auth. When any of the account sid, auth token or sender number
// is missing it short-circuits without attempting the call, so an unconfigured
// deployment simply runs without notifications.
type TwilioDispatcher struct {
	cfg config.TwilioConfig

	// BaseURL is the Twilio API root, replaceable in tests.
	BaseURL string
}

var _ intake.Notifier = (*TwilioDispatcher)(nil)

func NewTwilioDispatcher(cfg config.TwilioConfig) *TwilioDispatcher {
	return &TwilioDispatcher{cfg: cfg, BaseURL: twilioAPIBase}
}

func (d *TwilioDispatcher) NotifyPreBooking(ctx context.Context, b intake.PreBooking) {
	size := b.Size
	if size == "" {
		size = "Not specified"
	}
	text := "🔔 *New Pre-Booking Request*\n\n" +
		fmt.Sprintf("👤 *Name:* %s\n", b.Name) +
		fmt.Sprintf("📱 *Phone:* %s\n", b.Phone) +
		fmt.Sprintf("📧 *Email:* %s\n", b.Email) +
		fmt.Sprintf("👕 *Product:* %s\n", b.ProductName) +
		fmt.Sprintf("📏 *Size:* %s\n", size) +
		fmt.Sprintf("🕒 *Time:* %s\n", time.Now().Format("02/01/2006, 15:04:05")) +
		fmt.Sprintf("📦 *Booking ID:* %s", b.ID)
	d.send(ctx, text)
}

func (d *TwilioDispatcher) NotifyPreOrder(ctx context.Context, r intake.PreOrderRequest) {
	var sb strings.Builder
	sb.WriteString("🎊 *New Pre-Order Request*\n\n")
	fmt.Fprintf(&sb, "👤 *Name:* %s\n", r.Name)
	fmt.Fprintf(&sb, "📱 *Phone:* %s\n", r.Phone)
	fmt.Fprintf(&sb, "🎉 *Occasion:* %s\n", r.Occasion)
	if r.Message != "" {
		fmt.Fprintf(&sb, "💬 *Details:* %s\n", r.Message)
	}
	fmt.Fprintf(&sb, "🕒 *Time:* %s\n", time.Now().Format("02/01/2006, 15:04:05"))
	fmt.Fprintf(&sb, "📦 *Order ID:* %s", r.ID)
	d.send(ctx, sb.String())
}

// send performs the single delivery attempt. The response is inspected only
// for logging; callers never learn the outcome.
func (d *TwilioDispatcher) send(ctx context.Context, text string) {
	if d.cfg.AccountSid == "" || d.cfg.AuthToken == "" || d.cfg.WhatsappFrom == "" {
		zap.L().Info("notify: twilio credentials missing, skipping whatsapp notification")
		return
	}

	url := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", d.BaseURL, d.cfg.AccountSid)
	auth := base64.StdEncoding.EncodeToString([]byte(d.cfg.AccountSid + ":" + d.cfg.AuthToken))

	var (
		code int
		body string
	)
	err := gout.POST(url).
		SetHeader(gout.H{"Authorization": "Basic " + auth}).
		SetWWWForm(gout.H{
			"From": d.cfg.WhatsappFrom,
			"To":   "whatsapp:" + d.cfg.AdminPhone,
			"Body": text,
		}).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		zap.L().Warn("notify: twilio request failed", zap.Error(err))
		return
	}
	if code < 200 || code > 299 {
		zap.L().Warn("notify: twilio send rejected",
			zap.Int("status", code), zap.String("body", body))
		return
	}
	zap.L().Info("notify: whatsapp message sent", zap.Int("status", code))
}
