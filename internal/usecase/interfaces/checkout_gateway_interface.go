package interfaces

import "context"

// CheckoutSessionRequest is what the gateway needs to open a checkout
// session. ParcelID and ParcelName travel as opaque session metadata so a
// bare confirmation event can be correlated back to a parcel without a
// separate lookup table.
type CheckoutSessionRequest struct {
	ParcelID         string
	ParcelName       string
	CustomerEmail    string
	Currency         string
	AmountMinorUnits int64
}

// CheckoutSession is the opaque redirect handle returned to the client.
type CheckoutSession struct {
	ID          string
	RedirectURL string
}

// CheckoutSessionDetails is the authoritative session state retrieved from
// the gateway during confirmation. TransactionID is the gateway's own
// transaction identifier and becomes the ledger idempotency key.
type CheckoutSessionDetails struct {
	TransactionID string
	Paid          bool
	AmountTotal   float64
	Currency      string
	CustomerEmail string
	ParcelID      string
	ParcelName    string
}

// ICheckoutGateway abstracts the external payment provider (e.g. Mercado
// Pago). Both calls block on network I/O and must happen before any ledger
// reservation is taken.
type ICheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, token string) (CheckoutSessionDetails, error)
}
