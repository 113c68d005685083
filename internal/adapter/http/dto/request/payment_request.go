package request

import "strings"

// ConfirmPaymentRequest carries the confirmation token the gateway handed
// back after checkout. The token only names a session; everything about the
// payment itself is re-read from the gateway, never trusted from the client.
type ConfirmPaymentRequest struct {
	Token string `json:"token" binding:"required"`
}

func (r ConfirmPaymentRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}
