package entities

import "time"

// ParcelStatus represents the parcel payment lifecycle.
//
// Domain notes:
//   - A parcel starts as pending when the sender registers it.
//   - The only transition is pending -> paid, performed exactly once by the
//     payment reconciliation flow together with the tracking-ID assignment.

type ParcelStatus string

const (
	ParcelStatusPending ParcelStatus = "pending"
	ParcelStatusPaid    ParcelStatus = "paid"
)

// Parcel is the shipment request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sender_email-index): sender_email
//
// Monetary representation:
//   - Cost keeps the value as entered by the sender; the checkout flow
//     converts it to integral minor units and rejects anything that does not
//     parse to a positive amount.
//
// TrackingID is empty while pending and set atomically with the transition
// to paid.

type Parcel struct {
	ID          string       `json:"id"`
	SenderEmail string       `json:"sender_email"`
	ParcelName  string       `json:"parcel_name"`
	Cost        string       `json:"cost"`
	Status      ParcelStatus `json:"status"`
	TrackingID  string       `json:"tracking_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
