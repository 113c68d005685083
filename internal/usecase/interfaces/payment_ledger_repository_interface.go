package interfaces

import (
	"context"
	"errors"

	"zapshift/internal/domain/entities"
)

var (
	// ErrIdempotencyKeyExists is returned by Reserve when the key is already
	// present, which means the same gateway transaction was delivered before.
	ErrIdempotencyKeyExists = errors.New("idempotency key already reserved")
	// ErrLedgerRowNotReserved is returned by AttachTrackingID and Finalize
	// when the guarded update finds the row recorded (or, for attach,
	// carrying a different tracking ID); a concurrent attempt for the same
	// key got there first.
	ErrLedgerRowNotReserved = errors.New("ledger row not in reserved state")
)

// IPaymentLedgerRepository abstracts the append-only payment ledger.
//
// Reserve must be a single atomic create-if-absent on the idempotency key;
// it is the system's sole mutual-exclusion point, so the guarantee has to
// come from the storage layer, not from an in-process lock (multiple service
// instances run concurrently).
//
// AttachTrackingID writes the claimed tracking ID into the reserved row,
// guarded on the row still being reserved and not already carrying a
// different tracking ID. It runs before the parcel transition, so the row
// itself records which tracking ID this key claimed; ownership is then
// decided from a consistent read of the row, never from the eventually
// consistent parcel index.
//
// Finalize completes the reserved row with the transaction snapshot and the
// assigned tracking ID. Recorded rows are never updated or deleted.
//
// GetByIdempotencyKey is a consistent primary-key read. GetByParcelID goes
// through a GSI and may lag; it returns only recorded rows and must not be
// used for correctness decisions. Lookups return the zero value
// (IdempotencyKey == "") when nothing matches.

type IPaymentLedgerRepository interface {
	Reserve(ctx context.Context, idempotencyKey, parcelID string) (entities.PaymentRecord, error)
	AttachTrackingID(ctx context.Context, idempotencyKey, trackingID string) error
	Finalize(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (entities.PaymentRecord, error)
	GetByParcelID(ctx context.Context, parcelID string) (entities.PaymentRecord, error)
}
