package request

import (
	"encoding/json"
	"net/http"
	"strings"
)

const (
	HeaderCaktoSecret   = "X-Cakto-Secret"
	HeaderHotmartHottok = "X-Hotmart-Hottok"
	HeaderAuthorization = "Authorization"
	bearerPrefix        = "bearer "
	providerCakto       = "cakto"
	providerHotmart     = "hotmart"
)

// webhookSecretFields are the body fields providers may use to carry their
// shared secret.
type webhookSecretFields struct {
	Secret string `json:"secret"`
	Hottok string `json:"hottok"`
}

// WebhookCredentials is the credential material found on a webhook request.
type WebhookCredentials struct {
	Token  string
	Bearer string
}

// ExtractWebhookCredentials reads the provider secret and the internal bearer
// token. Cakto sends its secret in the body and Hotmart in a header; each falls
// back to the other location.
func ExtractWebhookCredentials(provider string, header http.Header, body []byte) WebhookCredentials {
	var fields webhookSecretFields
	_ = json.Unmarshal(body, &fields)

	creds := WebhookCredentials{Bearer: bearerToken(header.Get(HeaderAuthorization))}
	switch provider {
	case providerCakto:
		creds.Token = firstNonEmpty(fields.Secret, header.Get(HeaderCaktoSecret))
	case providerHotmart:
		creds.Token = firstNonEmpty(header.Get(HeaderHotmartHottok), fields.Hottok)
	}
	return creds
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
