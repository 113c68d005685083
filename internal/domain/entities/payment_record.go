package entities

import "time"

// PaymentRecordStatus is the lifecycle of a ledger row.
//
// A row is inserted as reserved the moment the gateway transaction ID is
// claimed (the uniqueness-enforcing insert), and becomes recorded once the
// parcel transition succeeded and the transaction snapshot is written.
// Recorded rows are immutable facts and are never touched again.

type PaymentRecordStatus string

const (
	PaymentRecordStatusReserved PaymentRecordStatus = "reserved"
	PaymentRecordStatusRecorded PaymentRecordStatus = "recorded"
)

// PaymentRecord is one entry of the append-only payment ledger:
// "this external transaction paid for this parcel".
//
// Storage model (DynamoDB):
//   - PK: idempotency_key (the gateway transaction identifier)
//   - GSI1 (parcel_id-index): parcel_id
//
// The uniqueness of idempotency_key is what collapses duplicate deliveries of
// the same confirmation into a single record.
//
// Amount, Currency, CustomerEmail and ParcelName are a snapshot of the
// transaction at confirmation time; they are never re-read from the gateway.

type PaymentRecord struct {
	ID             string              `json:"id"`
	IdempotencyKey string              `json:"idempotency_key"`
	ParcelID       string              `json:"parcel_id"`
	Amount         float64             `json:"amount"`
	Currency       string              `json:"currency"`
	CustomerEmail  string              `json:"customer_email"`
	ParcelName     string              `json:"parcel_name"`
	TrackingID     string              `json:"tracking_id"`
	Status         PaymentRecordStatus `json:"status"`
	PaidAt         time.Time           `json:"paid_at"`
}
