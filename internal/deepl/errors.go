package deepl

import (
	"fmt"
	"net/http"
)

// Kind classifies a provider failure. The enumeration is closed: every
// response status maps to exactly one kind, and unknown statuses map to
// KindInternal.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindPayloadTooLarge
	KindRateLimited
	KindQuotaExceeded
	KindServiceUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindPayloadTooLarge:
		return "payload too large"
	case KindRateLimited:
		return "rate limited"
	case KindQuotaExceeded:
		return "quota exceeded"
	case KindServiceUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}

// APIError is a classified provider failure. Message carries the provider's
// own error text verbatim when one was included.
type APIError struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("deepl: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("deepl: %s (status %d)", e.Kind, e.Status)
}

// statusQuotaExceeded is a provider-specific status outside the IANA
// registry.
const statusQuotaExceeded = 456

func classify(status int, message string) *APIError {
	kind := KindInternal
	switch status {
	case http.StatusBadRequest:
		kind = KindBadRequest
	case http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusRequestEntityTooLarge:
		kind = KindPayloadTooLarge
	case http.StatusTooManyRequests:
		kind = KindRateLimited
	case statusQuotaExceeded:
		kind = KindQuotaExceeded
	case http.StatusServiceUnavailable:
		kind = KindServiceUnavailable
	}
	return &APIError{Status: status, Kind: kind, Message: message}
}
