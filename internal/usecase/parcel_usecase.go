package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrParcelNotFound     = errors.New("parcel not found")
	ErrInvalidParcelID    = errors.New("invalid parcel id")
	ErrInvalidParcelInput = errors.New("invalid parcel input")
	ErrParcelHasPayment   = errors.New("parcel has a payment record")
)

// IParcelUseCase exposes plain parcel CRUD.
//
// Deletion is the one operation with a rule attached: once a payment record
// references the parcel it must be rejected, otherwise the ledger would point
// at a parcel that no longer exists.

type IParcelUseCase interface {
	CreateParcel(ctx context.Context, senderEmail, parcelName, cost string) (entities.Parcel, error)
	GetByID(ctx context.Context, id string) (entities.Parcel, error)
	List(ctx context.Context, senderEmail string) ([]entities.Parcel, error)
	DeleteParcel(ctx context.Context, id string) error
}

type ParcelUseCase struct {
	repo   interfaces.IParcelRepository
	ledger interfaces.IPaymentLedgerRepository
}

var _ IParcelUseCase = (*ParcelUseCase)(nil)

func NewParcelUseCase(repo interfaces.IParcelRepository, ledger interfaces.IPaymentLedgerRepository) *ParcelUseCase {
	return &ParcelUseCase{repo: repo, ledger: ledger}
}

func (u *ParcelUseCase) CreateParcel(ctx context.Context, senderEmail, parcelName, cost string) (entities.Parcel, error) {
	senderEmail = strings.TrimSpace(senderEmail)
	parcelName = strings.TrimSpace(parcelName)
	cost = strings.TrimSpace(cost)
	if senderEmail == "" || parcelName == "" || cost == "" {
		return entities.Parcel{}, ErrInvalidParcelInput
	}

	p := entities.Parcel{
		ID:          uuid.NewString(),
		SenderEmail: senderEmail,
		ParcelName:  parcelName,
		Cost:        cost,
		Status:      entities.ParcelStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *ParcelUseCase) GetByID(ctx context.Context, id string) (entities.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Parcel{}, ErrInvalidParcelID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Parcel{}, err
	}
	if p.ID == "" {
		return entities.Parcel{}, ErrParcelNotFound
	}
	return p, nil
}

func (u *ParcelUseCase) List(ctx context.Context, senderEmail string) ([]entities.Parcel, error) {
	senderEmail = strings.TrimSpace(senderEmail)
	if senderEmail != "" {
		return u.repo.ListBySenderEmail(ctx, senderEmail)
	}
	return u.repo.List(ctx)
}

func (u *ParcelUseCase) DeleteParcel(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidParcelID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrParcelNotFound
	}

	rec, err := u.ledger.GetByParcelID(ctx, id)
	if err != nil {
		return err
	}
	if rec.IdempotencyKey != "" {
		return ErrParcelHasPayment
	}

	// The repository delete is itself conditioned on status = pending, so a
	// reconciliation racing this delete cannot strand a ledger entry.
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrParcelNotDeletable) {
			return ErrParcelHasPayment
		}
		return err
	}
	return nil
}
