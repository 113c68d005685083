package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"
)

var (
	ErrInvalidParcelCost  = errors.New("invalid parcel cost")
	ErrParcelAlreadyPaid  = errors.New("parcel already paid")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

const defaultCheckoutCurrency = "USD"

// ICheckoutUseCase starts a gateway checkout session for a pending parcel
// and returns the redirect URL the client is sent to.

type ICheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, parcelID string) (string, error)
}

type CheckoutUseCase struct {
	parcels  interfaces.IParcelRepository
	gateway  interfaces.ICheckoutGateway
	currency string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(parcels interfaces.IParcelRepository, gateway interfaces.ICheckoutGateway, currency string) *CheckoutUseCase {
	if strings.TrimSpace(currency) == "" {
		currency = defaultCheckoutCurrency
	}
	return &CheckoutUseCase{parcels: parcels, gateway: gateway, currency: currency}
}

func (u *CheckoutUseCase) InitiateCheckout(ctx context.Context, parcelID string) (string, error) {
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return "", ErrInvalidParcelID
	}
	if u.gateway == nil {
		return "", errors.New("checkout gateway not configured")
	}

	p, err := u.parcels.GetByID(ctx, parcelID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading parcel parcel_id=%s err=%v", parcelID, err)
		return "", err
	}
	if p.ID == "" {
		return "", ErrParcelNotFound
	}
	if p.Status != entities.ParcelStatusPending {
		return "", ErrParcelAlreadyPaid
	}

	// Cost is validated before the gateway is contacted; a bad amount is an
	// input error, never a gateway round trip.
	amount, err := costToMinorUnits(p.Cost)
	if err != nil {
		log.Printf("[checkout][usecase] invalid cost parcel_id=%s cost=%q", parcelID, p.Cost)
		return "", err
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionRequest{
		ParcelID:         p.ID,
		ParcelName:       p.ParcelName,
		CustomerEmail:    p.SenderEmail,
		Currency:         u.currency,
		AmountMinorUnits: amount,
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway session creation failed parcel_id=%s err=%v", parcelID, err)
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	log.Printf("[checkout][usecase] session created parcel_id=%s session_id=%s", parcelID, session.ID)

	return session.RedirectURL, nil
}

// costToMinorUnits converts the free-form cost field into integral minor
// units (cents). Non-numeric and non-positive values are rejected.
func costToMinorUnits(cost string) (int64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cost), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidParcelCost
	}
	minor := int64(math.Round(v * 100))
	if minor <= 0 {
		return 0, ErrInvalidParcelCost
	}
	return minor, nil
}
