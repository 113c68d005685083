package response

import (
	"time"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase"
)

// CheckoutResponse carries the gateway redirect the client is sent to.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// ConfirmPaymentResponse is returned for every successful confirmation,
// identically for first and duplicate deliveries.
type ConfirmPaymentResponse struct {
	ParcelID      string `json:"parcel_id"`
	TrackingID    string `json:"tracking_id"`
	TransactionID string `json:"transaction_id"`
}

func FromReconciliationResult(res usecase.ReconciliationResult) ConfirmPaymentResponse {
	return ConfirmPaymentResponse{
		ParcelID:      res.ParcelID,
		TrackingID:    res.TrackingID,
		TransactionID: res.TransactionID,
	}
}

type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ParcelID      string    `json:"parcel_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email"`
	ParcelName    string    `json:"parcel_name"`
	TrackingID    string    `json:"tracking_id"`
	PaidAt        time.Time `json:"paid_at"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:            rec.ID,
		TransactionID: rec.IdempotencyKey,
		ParcelID:      rec.ParcelID,
		Amount:        rec.Amount,
		Currency:      rec.Currency,
		CustomerEmail: rec.CustomerEmail,
		ParcelName:    rec.ParcelName,
		TrackingID:    rec.TrackingID,
		PaidAt:        rec.PaidAt,
	}
}
