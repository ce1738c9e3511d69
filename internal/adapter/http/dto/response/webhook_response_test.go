package response

import (
	"encoding/json"
	"testing"

	"checkout_webhooks/internal/domain/entities"
	"checkout_webhooks/internal/usecase"
)

func TestFromWebhookOutcome(t *testing.T) {
	t.Run("processed", func(t *testing.T) {
		res := FromWebhookOutcome(usecase.WebhookOutcome{
			HTTPStatus:       200,
			Processed:        true,
			OrderID:          "ord-1",
			Strategy:         usecase.StrategyEmailMostRecent,
			NormalizedStatus: entities.EventStatusApproved,
			LyricsGenerated:  true,
			Message:          "Order marked as paid",
		})
		if !res.Success || res.OrderID != "ord-1" || res.StrategyUsed != "email_most_recent" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.LyricsGenerated == nil || !*res.LyricsGenerated {
			t.Fatalf("expected lyrics_generated=true, got %+v", res.LyricsGenerated)
		}
		if res.EmailTriggered == nil || *res.EmailTriggered {
			t.Fatalf("expected email_triggered=false, got %+v", res.EmailTriggered)
		}
	})

	t.Run("already processed body", func(t *testing.T) {
		res := FromWebhookOutcome(usecase.WebhookOutcome{
			AlreadyProcessed: true,
			Message:          usecase.MessageAlreadyProcessed,
		})
		b, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != `{"received":true,"message":"Already processed"}` {
			t.Fatalf("unexpected body: %s", b)
		}
	})

	t.Run("ignored event", func(t *testing.T) {
		res := FromWebhookOutcome(usecase.WebhookOutcome{
			OrderID:          "ord-2",
			NormalizedStatus: entities.EventStatusRefunded,
		})
		if res.Processed == nil || *res.Processed {
			t.Fatalf("expected processed=false, got %+v", res.Processed)
		}
		if res.LyricsGenerated != nil {
			t.Fatalf("lyrics_generated should be omitted")
		}
	})
}
