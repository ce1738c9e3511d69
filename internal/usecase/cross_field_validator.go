package usecase

import "checkout_webhooks/internal/domain/entities"

// CrossFieldValidator rejects weak matches whose customer data disagrees with
// the event. Reliable strategies are trusted as-is.
type CrossFieldValidator struct{}

func (CrossFieldValidator) Validate(ev entities.WebhookEvent, order entities.Order, strategy MatchStrategy) error {
	if strategy.Reliable() {
		return nil
	}
	if ev.CustomerEmail != "" && ev.CustomerEmail == normalizeEmail(order.CustomerEmail) {
		return nil
	}
	if phonesMatch(ev.CustomerPhone, order.CustomerWhatsapp) {
		return nil
	}
	return ErrValidationMismatch
}
