package usecase

import "errors"

var (
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrEmptyPayload        = errors.New("empty webhook payload")
	ErrInvalidPayload      = errors.New("invalid webhook payload")
	ErrNoIdentifier        = errors.New("no order identifier in webhook payload")
	ErrOrderNotFound       = errors.New("order not found")
	ErrValidationMismatch  = errors.New("webhook customer data does not match order")
	ErrPersistence         = errors.New("order persistence failure")
	ErrUnsupportedProvider = errors.New("unsupported payment provider")
)
