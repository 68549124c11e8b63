// Package notify delivers best-effort WhatsApp notifications for new intake
// submissions through the Twilio messaging API. Delivery makes exactly one
// attempt per submission: no retry, no backoff, no dead-lettering.
package notify

import (
	"context"

	"github.com/truethread/storefront/internal/intake"
)

// NopDispatcher satisfies intake.Notifier without doing anything. Used when
// notifications are disabled and in tests.
type NopDispatcher struct{}

func (NopDispatcher) NotifyPreBooking(ctx context.Context, b intake.PreBooking)    {}
func (NopDispatcher) NotifyPreOrder(ctx context.Context, r intake.PreOrderRequest) {}
