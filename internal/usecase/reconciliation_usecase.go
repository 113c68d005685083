package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfirmationToken    = errors.New("invalid confirmation token")
	ErrPaymentNotConfirmed         = errors.New("payment not confirmed by gateway")
	ErrConflictingPayment          = errors.New("conflicting payment for parcel")
	ErrTrackingAssignmentExhausted = errors.New("tracking id assignment exhausted")
	ErrPaymentRecordNotFound       = errors.New("payment record not found")
)

// maxTrackingAttempts bounds the regenerate-on-collision loop so a
// pathological randomness source cannot block a confirmation forever.
const maxTrackingAttempts = 5

// attemptState tracks a single confirmation attempt through its finite-state
// sequence. Rejected and reconciled are terminal; failed attempts are safe to
// retry with the same token because nothing was mutated before the ledger
// reservation.
type attemptState string

const (
	attemptReceived   attemptState = "received"
	attemptVerified   attemptState = "verified"
	attemptReconciled attemptState = "reconciled"
	attemptRejected   attemptState = "rejected"
	attemptFailed     attemptState = "failed"
)

// ReconciliationResult is what a successful confirmation returns, identically
// for the first delivery and for any duplicate of it.
type ReconciliationResult struct {
	ParcelID      string
	TrackingID    string
	TransactionID string
}

// IReconciliationUseCase applies an external payment confirmation to internal
// state exactly once.

type IReconciliationUseCase interface {
	ConfirmPayment(ctx context.Context, token string) (ReconciliationResult, error)
	PaymentForParcel(ctx context.Context, parcelID string) (entities.PaymentRecord, error)
}

// ReconciliationUseCase coordinates, for one confirmation event, the parcel
// state transition, the tracking-ID assignment and the ledger append.
//
// The discipline that makes this safe under concurrent duplicate delivery:
//   - the ledger reservation (create-if-absent on the idempotency key) is the
//     sole mutual-exclusion point and happens only after gateway verification,
//     so no storage claim is held across network I/O;
//   - the parcel transition is a conditional write on status = pending;
//   - the coordinator itself is stateless, all state lives in the stores.

type ReconciliationUseCase struct {
	parcels  interfaces.IParcelRepository
	ledger   interfaces.IPaymentLedgerRepository
	gateway  interfaces.ICheckoutGateway
	tracking TrackingIDGenerator
}

// TrackingIDGenerator produces candidate tracking identifiers. It must be
// pure with respect to system state.
type TrackingIDGenerator interface {
	Generate() string
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	parcels interfaces.IParcelRepository,
	ledger interfaces.IPaymentLedgerRepository,
	gateway interfaces.ICheckoutGateway,
	tracking TrackingIDGenerator,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{parcels: parcels, ledger: ledger, gateway: gateway, tracking: tracking}
}

func (u *ReconciliationUseCase) ConfirmPayment(ctx context.Context, token string) (ReconciliationResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ReconciliationResult{}, ErrInvalidConfirmationToken
	}
	if u.gateway == nil {
		return ReconciliationResult{}, errors.New("checkout gateway not configured")
	}

	state := attemptReceived
	log.Printf("[reconcile][usecase] state=%s token=%s", state, token)

	// Verify: the session state comes from the gateway, never from the
	// client. This path mutates nothing and is safe to call repeatedly.
	session, err := u.gateway.RetrieveSession(ctx, token)
	if err != nil {
		log.Printf("[reconcile][usecase] state=%s token=%s err=%v", attemptFailed, token, err)
		return ReconciliationResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if !session.Paid {
		log.Printf("[reconcile][usecase] state=%s token=%s gateway reports unpaid", attemptRejected, token)
		return ReconciliationResult{}, ErrPaymentNotConfirmed
	}
	if session.TransactionID == "" || session.ParcelID == "" {
		log.Printf("[reconcile][usecase] state=%s token=%s missing transaction or parcel identity", attemptFailed, token)
		return ReconciliationResult{}, ErrInvalidConfirmationToken
	}
	state = attemptVerified
	log.Printf("[reconcile][usecase] state=%s transaction_id=%s parcel_id=%s", state, session.TransactionID, session.ParcelID)

	// Idempotency check: the key is the gateway's transaction identifier.
	// The create-if-absent insert is the only mutual exclusion in the flow.
	key := session.TransactionID
	rec, err := u.ledger.Reserve(ctx, key, session.ParcelID)
	if err != nil {
		if errors.Is(err, interfaces.ErrIdempotencyKeyExists) {
			return u.resumeReserved(ctx, key, session)
		}
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s reserve failed err=%v", attemptFailed, key, err)
		return ReconciliationResult{}, err
	}

	return u.driveReserved(ctx, rec, session)
}

// resumeReserved handles a reservation conflict: the same transaction was
// delivered before. A recorded row is returned as if this were the first
// delivery; a still-reserved row means a previous attempt crashed mid-flight
// and is re-driven with the already-reserved key.
func (u *ReconciliationUseCase) resumeReserved(ctx context.Context, key string, session interfaces.CheckoutSessionDetails) (ReconciliationResult, error) {
	rec, err := u.ledger.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return ReconciliationResult{}, err
	}
	if rec.IdempotencyKey == "" {
		return ReconciliationResult{}, fmt.Errorf("ledger row for reserved key %s not readable", key)
	}
	if rec.ParcelID != session.ParcelID {
		// Same transaction ID correlated to a different parcel: either a
		// gateway anomaly or broken session metadata. Operator territory.
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s ledger parcel_id=%s session parcel_id=%s key collision with mismatched parcel", attemptFailed, key, rec.ParcelID, session.ParcelID)
		return ReconciliationResult{}, ErrConflictingPayment
	}
	if rec.Status == entities.PaymentRecordStatusRecorded {
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s duplicate delivery, tracking_id=%s", attemptReconciled, key, rec.TrackingID)
		return ReconciliationResult{ParcelID: rec.ParcelID, TrackingID: rec.TrackingID, TransactionID: key}, nil
	}

	log.Printf("[reconcile][usecase] transaction_id=%s resuming crashed reservation", key)
	return u.driveReserved(ctx, rec, session)
}

// driveReserved runs the post-reservation steps: assign a unique tracking ID,
// write it into the reserved ledger row, transition the parcel with a guarded
// write, and finalize the row with the transaction snapshot. Exhaustion
// aborts before anything is finalized, so a retry from scratch is safe.
//
// The tracking ID is attached to the row BEFORE the parcel transition: once
// attached, the row itself says which tracking ID this key claimed, and every
// later recovery or conflict decision reads it back with a consistent
// primary-key lookup.
func (u *ReconciliationUseCase) driveReserved(ctx context.Context, rec entities.PaymentRecord, session interfaces.CheckoutSessionDetails) (ReconciliationResult, error) {
	key := rec.IdempotencyKey
	parcelID := rec.ParcelID

	// A resumed reservation reuses the tracking ID its row already claimed
	// instead of leaking another tracking_ids item.
	trackingID := rec.TrackingID
	if trackingID == "" {
		claimed, err := u.claimTrackingID(ctx, parcelID)
		if err != nil {
			log.Printf("[reconcile][usecase] state=%s transaction_id=%s err=%v", attemptFailed, key, err)
			return ReconciliationResult{}, err
		}
		trackingID = claimed

		if err := u.ledger.AttachTrackingID(ctx, key, trackingID); err != nil {
			_ = u.parcels.ReleaseTrackingID(ctx, trackingID)
			if errors.Is(err, interfaces.ErrLedgerRowNotReserved) {
				// A concurrent attempt for this key attached first or even
				// finalized; re-read the row and follow its state.
				log.Printf("[reconcile][usecase] transaction_id=%s lost tracking attach race", key)
				return u.resumeReserved(ctx, key, session)
			}
			log.Printf("[reconcile][usecase] state=%s transaction_id=%s tracking attach failed err=%v", attemptFailed, key, err)
			return ReconciliationResult{}, err
		}
	}

	if _, err := u.parcels.MarkPaid(ctx, parcelID, trackingID); err != nil {
		if errors.Is(err, interfaces.ErrParcelNotPending) {
			return u.settleAlreadyPaid(ctx, rec, session, trackingID)
		}
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s mark-paid failed err=%v", attemptFailed, key, err)
		return ReconciliationResult{}, err
	}

	return u.finalize(ctx, rec, session, trackingID)
}

func (u *ReconciliationUseCase) claimTrackingID(ctx context.Context, parcelID string) (string, error) {
	for attempt := 1; attempt <= maxTrackingAttempts; attempt++ {
		trackingID := u.tracking.Generate()
		err := u.parcels.ClaimTrackingID(ctx, trackingID, parcelID)
		if err == nil {
			return trackingID, nil
		}
		if !errors.Is(err, interfaces.ErrTrackingIDTaken) {
			return "", err
		}
		log.Printf("[reconcile][usecase] tracking id collision parcel_id=%s attempt=%d", parcelID, attempt)
	}
	return "", ErrTrackingAssignmentExhausted
}

// settleAlreadyPaid decides what a failed pending->paid guard means. The
// decision reads only consistent sources: the key's own ledger row and the
// parcel item. If the row is already recorded, a concurrent duplicate
// completed this key and its result is returned as-is. If the parcel carries
// exactly the tracking ID this key's row claimed, a previous attempt for
// this very key crashed between the parcel update and finalization and is
// completed now. Anything else means the parcel was paid under a different
// transaction: ConflictingPayment, never auto-resolved.
//
// The parcel GSI is never consulted here; it lags and would misclassify a
// conflict as a recovery.
func (u *ReconciliationUseCase) settleAlreadyPaid(ctx context.Context, rec entities.PaymentRecord, session interfaces.CheckoutSessionDetails, trackingID string) (ReconciliationResult, error) {
	key := rec.IdempotencyKey
	parcelID := rec.ParcelID

	row, err := u.ledger.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return ReconciliationResult{}, err
	}
	if row.Status == entities.PaymentRecordStatusRecorded {
		if trackingID != row.TrackingID {
			_ = u.parcels.ReleaseTrackingID(ctx, trackingID)
		}
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s parcel already settled", attemptReconciled, key)
		return ReconciliationResult{ParcelID: parcelID, TrackingID: row.TrackingID, TransactionID: key}, nil
	}

	p, err := u.parcels.GetByID(ctx, parcelID)
	if err != nil {
		return ReconciliationResult{}, err
	}
	if p.Status == entities.ParcelStatusPaid && p.TrackingID == trackingID {
		log.Printf("[reconcile][usecase] transaction_id=%s recovering interrupted reconciliation, tracking_id=%s", key, trackingID)
		return u.finalize(ctx, rec, session, trackingID)
	}

	// Claim is useless now; releasing it is best effort.
	_ = u.parcels.ReleaseTrackingID(ctx, trackingID)
	log.Printf("[reconcile][usecase] state=%s transaction_id=%s parcel_id=%s already paid under another transaction", attemptFailed, key, parcelID)
	return ReconciliationResult{}, ErrConflictingPayment
}

// PaymentForParcel returns the recorded ledger entry referencing a parcel.
func (u *ReconciliationUseCase) PaymentForParcel(ctx context.Context, parcelID string) (entities.PaymentRecord, error) {
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return entities.PaymentRecord{}, ErrInvalidParcelID
	}

	rec, err := u.ledger.GetByParcelID(ctx, parcelID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.IdempotencyKey == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}

// finalize writes the immutable snapshot of the transaction into the
// reserved ledger row and completes the attempt.
func (u *ReconciliationUseCase) finalize(ctx context.Context, rec entities.PaymentRecord, session interfaces.CheckoutSessionDetails, trackingID string) (ReconciliationResult, error) {
	rec.ID = uuid.NewString()
	rec.Amount = session.AmountTotal
	rec.Currency = session.Currency
	rec.CustomerEmail = session.CustomerEmail
	rec.ParcelName = session.ParcelName
	rec.TrackingID = trackingID
	rec.Status = entities.PaymentRecordStatusRecorded
	rec.PaidAt = time.Now().UTC()

	if _, err := u.ledger.Finalize(ctx, rec); err != nil {
		if errors.Is(err, interfaces.ErrLedgerRowNotReserved) {
			// A concurrent duplicate finalized this key between our parcel
			// update and this write. The row is the fact; return it.
			row, rerr := u.ledger.GetByIdempotencyKey(ctx, rec.IdempotencyKey)
			if rerr == nil && row.Status == entities.PaymentRecordStatusRecorded {
				log.Printf("[reconcile][usecase] state=%s transaction_id=%s finalized by concurrent attempt", attemptReconciled, rec.IdempotencyKey)
				return ReconciliationResult{ParcelID: row.ParcelID, TrackingID: row.TrackingID, TransactionID: row.IdempotencyKey}, nil
			}
		}
		log.Printf("[reconcile][usecase] state=%s transaction_id=%s finalize failed err=%v", attemptFailed, rec.IdempotencyKey, err)
		return ReconciliationResult{}, err
	}

	log.Printf("[reconcile][usecase] state=%s transaction_id=%s parcel_id=%s tracking_id=%s", attemptReconciled, rec.IdempotencyKey, rec.ParcelID, trackingID)
	return ReconciliationResult{ParcelID: rec.ParcelID, TrackingID: trackingID, TransactionID: rec.IdempotencyKey}, nil
}
