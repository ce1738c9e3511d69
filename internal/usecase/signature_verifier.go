package usecase

import (
	"crypto/subtle"
	"strings"

	"checkout_webhooks/internal/domain/entities"
)

type VerificationResult string

const (
	VerificationValid           VerificationResult = "valid"
	VerificationInternalTrusted VerificationResult = "internal-trusted"
)

// Credentials is the credential material a webhook request presented.
//
// Token is the provider secret (Cakto body "secret", Hotmart hottok header).
// BearerToken is the Authorization bearer value, used by internal replays.
type Credentials struct {
	Token       string
	BearerToken string
}

// SignatureVerifier checks provider shared secrets. It fails closed: a provider
// without a configured secret rejects every request, internal ones included.
type SignatureVerifier struct {
	secrets    map[entities.Provider]string
	serviceKey string
}

func NewSignatureVerifier(secrets map[entities.Provider]string, serviceKey string) *SignatureVerifier {
	cp := make(map[entities.Provider]string, len(secrets))
	for k, v := range secrets {
		cp[k] = strings.TrimSpace(v)
	}
	return &SignatureVerifier{secrets: cp, serviceKey: strings.TrimSpace(serviceKey)}
}

func (v *SignatureVerifier) Verify(provider entities.Provider, creds Credentials) (VerificationResult, error) {
	secret := v.secrets[provider]
	if secret == "" {
		return "", ErrSecretNotConfigured
	}

	if v.serviceKey != "" && constantTimeEqual(strings.TrimSpace(creds.BearerToken), v.serviceKey) {
		return VerificationInternalTrusted, nil
	}

	token := strings.TrimSpace(creds.Token)
	if token == "" || !constantTimeEqual(token, secret) {
		return "", ErrInvalidSignature
	}
	return VerificationValid, nil
}

func constantTimeEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
