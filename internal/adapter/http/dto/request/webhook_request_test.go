package request

import (
	"net/http"
	"testing"
)

func TestExtractWebhookCredentials(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		header     http.Header
		body       string
		wantToken  string
		wantBearer string
	}{
		{
			name:      "cakto body secret",
			provider:  "cakto",
			header:    http.Header{},
			body:      `{"secret":"s1","event":"purchase_approved"}`,
			wantToken: "s1",
		},
		{
			name:      "cakto header fallback",
			provider:  "cakto",
			header:    http.Header{"X-Cakto-Secret": []string{"s2"}},
			body:      `{"event":"purchase_approved"}`,
			wantToken: "s2",
		},
		{
			name:      "hotmart header wins over body",
			provider:  "hotmart",
			header:    http.Header{"X-Hotmart-Hottok": []string{"h1"}},
			body:      `{"hottok":"h2"}`,
			wantToken: "h1",
		},
		{
			name:      "hotmart body fallback",
			provider:  "hotmart",
			header:    http.Header{},
			body:      `{"hottok":"h2"}`,
			wantToken: "h2",
		},
		{
			name:       "bearer token",
			provider:   "hotmart",
			header:     http.Header{"Authorization": []string{"Bearer svc-key"}},
			body:       `{}`,
			wantBearer: "svc-key",
		},
		{
			name:     "non bearer authorization ignored",
			provider: "cakto",
			header:   http.Header{"Authorization": []string{"Basic abc"}},
			body:     `not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractWebhookCredentials(tt.provider, tt.header, []byte(tt.body))
			if got.Token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, got.Token)
			}
			if got.Bearer != tt.wantBearer {
				t.Fatalf("expected bearer %q, got %q", tt.wantBearer, got.Bearer)
			}
		})
	}
}
