package interfaces

import (
	"context"
	"errors"

	"zapshift/internal/domain/entities"
)

var (
	// ErrParcelNotPending is returned by MarkPaid when the guarded update
	// finds the parcel in any state other than pending.
	ErrParcelNotPending = errors.New("parcel not pending")
	// ErrTrackingIDTaken is returned by ClaimTrackingID on a uniqueness
	// conflict; the caller regenerates and retries.
	ErrTrackingIDTaken = errors.New("tracking id already taken")
	// ErrParcelNotDeletable is returned by Delete when the parcel is no
	// longer pending.
	ErrParcelNotDeletable = errors.New("parcel not deletable")
)

// IParcelRepository abstracts DynamoDB persistence for Parcel.
//
// Lookups return the zero value (ID == "") when nothing matches.
//
// MarkPaid must be a conditional write on status = pending, not a
// read-then-write: it is the compare-and-swap that closes the race between
// two reconciliations for the same parcel. ClaimTrackingID must be an atomic
// create-if-absent so tracking IDs are unique across all parcels.

type IParcelRepository interface {
	Create(ctx context.Context, p entities.Parcel) (entities.Parcel, error)
	GetByID(ctx context.Context, id string) (entities.Parcel, error)
	List(ctx context.Context) ([]entities.Parcel, error)
	ListBySenderEmail(ctx context.Context, email string) ([]entities.Parcel, error)
	ClaimTrackingID(ctx context.Context, trackingID, parcelID string) error
	ReleaseTrackingID(ctx context.Context, trackingID string) error
	MarkPaid(ctx context.Context, id, trackingID string) (entities.Parcel, error)
	Delete(ctx context.Context, id string) error
}
