package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"checkout_webhooks/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fieldPaths lists, per canonical field, the dotted JSON paths a provider may
// use for it. The first path holding a non-empty value wins.
type fieldPaths struct {
	Event         []string
	Status        []string
	TransactionID []string
	CheckoutURL   []string
	OrderID       []string
	Email         []string
	Phone         []string
	Amount        []string
	PaidAt        []string
}

var caktoFieldPaths = fieldPaths{
	Event:         []string{"event", "data.event"},
	Status:        []string{"data.status", "status"},
	TransactionID: []string{"data.id", "data.transaction_id", "transaction_id", "id", "data.refId"},
	CheckoutURL:   []string{"data.checkoutUrl", "data.checkout_url", "checkout_url", "checkoutUrl"},
	OrderID: []string{
		"data.metadata.order_id", "metadata.order_id", "data.order_id", "order_id",
		"data.external_id", "data.externalId", "external_id",
	},
	Email:  []string{"data.customer.email", "customer.email", "data.email", "email"},
	Phone:  []string{"data.customer.phone", "customer.phone", "data.phone", "phone"},
	Amount: []string{"data.amount", "amount", "data.baseAmount"},
	PaidAt: []string{"data.paidAt", "data.paid_at", "paid_at", "paidAt"},
}

var hotmartFieldPaths = fieldPaths{
	Event:         []string{"event"},
	Status:        []string{"data.purchase.status", "purchase.status", "status"},
	TransactionID: []string{"data.purchase.transaction", "purchase.transaction", "data.transaction", "transaction"},
	Email:         []string{"data.buyer.email", "buyer.email", "email"},
	Phone: []string{
		"data.buyer.checkout_phone", "data.buyer.phone", "buyer.checkout_phone", "buyer.phone",
	},
	Amount: []string{
		"data.purchase.price.value", "purchase.price.value", "data.purchase.full_price.value", "price.value",
	},
	PaidAt: []string{"data.purchase.approved_date", "purchase.approved_date", "approved_date"},
}

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// Normalizer turns raw provider bodies into canonical WebhookEvents.
type Normalizer struct {
	paths map[entities.Provider]fieldPaths
}

func NewNormalizer() *Normalizer {
	return &Normalizer{paths: map[entities.Provider]fieldPaths{
		entities.ProviderCakto:   caktoFieldPaths,
		entities.ProviderHotmart: hotmartFieldPaths,
	}}
}

// Normalize decodes raw and extracts the canonical fields. It returns the
// partially filled event together with ErrNoIdentifier so callers can still
// log what was received.
func (n *Normalizer) Normalize(provider entities.Provider, raw []byte) (entities.WebhookEvent, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return entities.WebhookEvent{}, ErrEmptyPayload
	}
	paths, ok := n.paths[provider]
	if !ok {
		return entities.WebhookEvent{}, ErrUnsupportedProvider
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: body is not a json object", ErrInvalidPayload)
	}

	ev := entities.WebhookEvent{
		Provider:      provider,
		Raw:           json.RawMessage(raw),
		Event:         firstString(doc, paths.Event),
		Status:        firstString(doc, paths.Status),
		TransactionID: firstString(doc, paths.TransactionID),
		CustomerEmail: normalizeEmail(firstString(doc, paths.Email)),
		CustomerPhone: digitsOnly(firstString(doc, paths.Phone)),
		AmountCents:   amountCents(firstValue(doc, paths.Amount)),
		PaidAt:        parsePaidAt(firstValue(doc, paths.PaidAt)),
	}
	ev.NormalizedStatus = NormalizeEventStatus(ev.Event, ev.Status)
	if provider == entities.ProviderCakto {
		ev.OrderIDHint = extractOrderIDHint(doc, paths)
	}

	if !ev.HasIdentifier() {
		return ev, ErrNoIdentifier
	}
	return ev, nil
}

func extractOrderIDHint(doc map[string]any, paths fieldPaths) string {
	if u := firstString(doc, paths.CheckoutURL); u != "" {
		if m := uuidPattern.FindString(u); m != "" {
			if id, err := uuid.Parse(m); err == nil {
				return id.String()
			}
		}
	}
	return firstString(doc, paths.OrderID)
}

// Billet, waiting and abandoned-checkout events map to pending on purpose and
// are acknowledged without a transition instead of falling through to the
// approved default.
var (
	refundedKeywords   = []string{"refund", "reembols", "estorn"}
	chargebackKeywords = []string{"chargeback", "protest", "dispute"}
	cancelledKeywords  = []string{"cancel", "expired"}
	refusedKeywords    = []string{"refus", "recusad", "declin", "reject", "fail"}
	approvedKeywords   = []string{"approv", "aprovad", "paid", "pago", "complete", "success"}
	pendingKeywords    = []string{"waiting", "billet", "printed", "delayed", "pending", "gerado", "abandon", "initiate"}
)

// NormalizeEventStatus collapses a provider event name and status into an
// EventStatus. Negative outcomes are checked first so a refund notification
// that also mentions "approved" is never treated as a payment.
func NormalizeEventStatus(event, status string) entities.EventStatus {
	s := strings.ToLower(strings.TrimSpace(event + " " + status))
	switch {
	case s == "":
		return entities.EventStatusUnknown
	case containsAny(s, refundedKeywords):
		return entities.EventStatusRefunded
	case containsAny(s, chargebackKeywords):
		return entities.EventStatusChargeback
	case containsAny(s, cancelledKeywords):
		return entities.EventStatusCancelled
	case containsAny(s, refusedKeywords):
		return entities.EventStatusRefused
	case containsAny(s, approvedKeywords):
		return entities.EventStatusApproved
	case containsAny(s, pendingKeywords):
		return entities.EventStatusPending
	}
	return entities.EventStatusUnknown
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func lookup(doc map[string]any, path string) (any, bool) {
	var cur any = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

func firstValue(doc map[string]any, paths []string) any {
	for _, p := range paths {
		if v, ok := lookup(doc, p); ok && stringValue(v) != "" {
			return v
		}
	}
	return nil
}

func firstString(doc map[string]any, paths []string) string {
	return stringValue(firstValue(doc, paths))
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// decimalCommaPattern matches "12,5" and "12,50" but not a thousands
// separator such as "1,500".
var decimalCommaPattern = regexp.MustCompile(`^-?\d+,\d{1,2}$`)

// amountCents converts a decimal currency amount into integer cents, rounding
// half away from zero. Unparsable input yields 0.
func amountCents(v any) int64 {
	s := stringValue(v)
	if s == "" {
		return 0
	}
	if decimalCommaPattern.MatchString(s) {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

var paidAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parsePaidAt accepts RFC3339-ish strings and epoch timestamps (seconds or milliseconds).
func parsePaidAt(v any) time.Time {
	s := stringValue(v)
	if s == "" {
		return time.Time{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1_000_000_000_000 {
			return time.UnixMilli(n).UTC()
		}
		return time.Unix(n, 0).UTC()
	}
	for _, layout := range paidAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
