package usecase

import (
	"errors"
	"testing"

	"checkout_webhooks/internal/domain/entities"
)

func TestSignatureVerifier_Verify(t *testing.T) {
	v := NewSignatureVerifier(map[entities.Provider]string{
		entities.ProviderCakto:   "cakto-secret",
		entities.ProviderHotmart: " hottok ",
	}, "service-key")

	tests := []struct {
		name     string
		provider entities.Provider
		creds    Credentials
		want     VerificationResult
		wantErr  error
	}{
		{"cakto valid secret", entities.ProviderCakto, Credentials{Token: "cakto-secret"}, VerificationValid, nil},
		{"hotmart secret trimmed", entities.ProviderHotmart, Credentials{Token: "hottok"}, VerificationValid, nil},
		{"wrong secret", entities.ProviderCakto, Credentials{Token: "nope"}, "", ErrInvalidSignature},
		{"missing secret", entities.ProviderCakto, Credentials{}, "", ErrInvalidSignature},
		{"service bearer", entities.ProviderHotmart, Credentials{BearerToken: "service-key"}, VerificationInternalTrusted, nil},
		{"wrong bearer falls back to token", entities.ProviderCakto, Credentials{BearerToken: "x", Token: "cakto-secret"}, VerificationValid, nil},
		{"unknown provider", entities.Provider("stripe"), Credentials{Token: "cakto-secret"}, "", ErrSecretNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Verify(tt.provider, tt.creds)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected err %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSignatureVerifier_FailsClosedWithoutSecret(t *testing.T) {
	v := NewSignatureVerifier(map[entities.Provider]string{entities.ProviderCakto: "  "}, "service-key")

	_, err := v.Verify(entities.ProviderCakto, Credentials{BearerToken: "service-key"})
	if !errors.Is(err, ErrSecretNotConfigured) {
		t.Fatalf("expected ErrSecretNotConfigured even for internal caller, got %v", err)
	}
}

func TestSignatureVerifier_EmptyServiceKeyNeverTrusts(t *testing.T) {
	v := NewSignatureVerifier(map[entities.Provider]string{entities.ProviderCakto: "s"}, "")

	_, err := v.Verify(entities.ProviderCakto, Credentials{BearerToken: ""})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}
