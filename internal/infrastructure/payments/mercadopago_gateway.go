package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"zapshift/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	metadataParcelIDKey   = "parcel_id"
	metadataParcelNameKey = "parcel_name"
)

// MercadoPagoGateway implements the checkout gateway on Mercado Pago.
//
// CreateCheckoutSession opens a Checkout Pro preference whose init_point is
// the redirect URL; parcel identity rides along as preference metadata plus
// external_reference, so the payment retrieved at confirmation time carries
// it back without any lookup table on our side.
//
// The confirmation token is the payment ID Mercado Pago appends to the
// back URL after checkout.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	backURL     string
	mockMode    bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isGatewayMockEnabled() {
		log.Printf("[gateway][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[gateway][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[gateway][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[gateway][mercadopago] client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		backURL:     strings.TrimSpace(os.Getenv("CHECKOUT_BACK_URL")),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[gateway][mercadopago] mock session created parcel_id=%s session_id=%s", req.ParcelID, id)
		return interfaces.CheckoutSession{
			ID:          id,
			RedirectURL: fmt.Sprintf("https://sandbox.example/checkout/%s?parcel=%s", id, req.ParcelID),
		}, nil
	}

	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         req.ParcelID,
				Title:      req.ParcelName,
				Quantity:   1,
				CurrencyID: req.Currency,
				UnitPrice:  float64(req.AmountMinorUnits) / 100,
			},
		},
		ExternalReference: req.ParcelID,
		Metadata: map[string]any{
			metadataParcelIDKey:   req.ParcelID,
			metadataParcelNameKey: req.ParcelName,
		},
	}
	if g.backURL != "" {
		prefReq.BackURLs = &preference.BackURLsRequest{
			Success: g.backURL,
			Pending: g.backURL,
			Failure: g.backURL,
		}
	}

	log.Printf("[gateway][mercadopago] creating preference parcel_id=%s amount_minor=%d", req.ParcelID, req.AmountMinorUnits)
	resp, err := g.preferences.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[gateway][mercadopago] preference create failed parcel_id=%s err=%v", req.ParcelID, err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[gateway][mercadopago] preference created parcel_id=%s preference_id=%s", req.ParcelID, resp.ID)

	return interfaces.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) RetrieveSession(ctx context.Context, token string) (interfaces.CheckoutSessionDetails, error) {
	if g.mockMode {
		return mockSessionDetails(token), nil
	}

	paymentID, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return interfaces.CheckoutSessionDetails{}, fmt.Errorf("malformed confirmation token %q", token)
	}

	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		log.Printf("[gateway][mercadopago] payment get failed payment_id=%d err=%v", paymentID, err)
		return interfaces.CheckoutSessionDetails{}, err
	}

	parcelID := metadataString(resp.Metadata, metadataParcelIDKey)
	if parcelID == "" {
		parcelID = resp.ExternalReference
	}

	details := interfaces.CheckoutSessionDetails{
		TransactionID: strconv.Itoa(resp.ID),
		Paid:          resp.Status == "approved",
		AmountTotal:   resp.TransactionAmount,
		Currency:      resp.CurrencyID,
		CustomerEmail: resp.Payer.Email,
		ParcelID:      parcelID,
		ParcelName:    metadataString(resp.Metadata, metadataParcelNameKey),
	}
	log.Printf("[gateway][mercadopago] payment retrieved payment_id=%d status=%s parcel_id=%s", resp.ID, resp.Status, parcelID)
	return details, nil
}

// mockSessionDetails fabricates an approved session so the whole flow can be
// exercised without credentials. Token format: <parcelID>[:unpaid].
func mockSessionDetails(token string) interfaces.CheckoutSessionDetails {
	parcelID, flag, _ := strings.Cut(token, ":")
	return interfaces.CheckoutSessionDetails{
		TransactionID: "mock-" + parcelID,
		Paid:          flag != "unpaid",
		AmountTotal:   10,
		Currency:      "USD",
		CustomerEmail: "mock@example.com",
		ParcelID:      parcelID,
		ParcelName:    "mock parcel",
	}
}

func metadataString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
