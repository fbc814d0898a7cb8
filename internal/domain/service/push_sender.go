package service

import "context"

// SendResult classifies the outcome of one push delivery attempt. The token
// removal policy is keyed on this kind, never on concrete SDK error types.
type SendResult int

const (
	// SendOK means the message was accepted for delivery.
	SendOK SendResult = iota
	// SendInvalidToken means the token is malformed; it will never work.
	SendInvalidToken
	// SendUnregistered means the token was valid once but the registration
	// is gone (app uninstalled, browser permission revoked).
	SendUnregistered
	// SendFailed covers every other, possibly transient, delivery error.
	// The token is kept and no retry happens within the call.
	SendFailed
)

// Dead reports whether the result means the token should be removed from the
// user's registered set.
func (r SendResult) Dead() bool {
	return r == SendInvalidToken || r == SendUnregistered
}

// PushSender delivers one push message to one registration token.
type PushSender interface {
	// Send attempts delivery and classifies the outcome. The error carries
	// detail for logging; the SendResult alone drives policy.
	Send(ctx context.Context, token, title, body string, data map[string]string) (SendResult, error)
}
