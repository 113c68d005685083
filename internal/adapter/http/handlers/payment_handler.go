package handlers

import (
	"errors"
	"log"
	"net/http"

	request "zapshift/internal/adapter/http/dto/request"
	response "zapshift/internal/adapter/http/dto/response"
	"zapshift/internal/usecase"
	"zapshift/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout initiation and payment confirmation.

type PaymentHandler struct {
	checkout  usecase.ICheckoutUseCase
	reconcile usecase.IReconciliationUseCase
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconcile usecase.IReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconcile: reconcile}
}

// InitiateCheckout opens a gateway checkout session for a pending parcel and
// returns the redirect URL. Gateway failures are surfaced as-is; the user
// retries by clicking again, there is no automatic retry here.
func (h *PaymentHandler) InitiateCheckout(c *gin.Context) {
	parcelID := c.Param("parcel_id")
	log.Printf("[payment][handler] checkout start parcel_id=%s", parcelID)

	url, err := h.checkout.InitiateCheckout(c.Request.Context(), parcelID)
	if err != nil {
		log.Printf("[payment][handler] checkout failed parcel_id=%s err=%v", parcelID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success parcel_id=%s", parcelID)

	c.JSON(http.StatusOK, response.CheckoutResponse{CheckoutURL: url})
}

// ConfirmPayment applies a gateway confirmation. The endpoint is idempotent:
// duplicate deliveries of the same confirmation return the same tracking ID.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token := payload.ResolveToken()
	log.Printf("[payment][handler] confirm start token=%s", token)

	res, err := h.reconcile.ConfirmPayment(c.Request.Context(), token)
	if err != nil {
		log.Printf("[payment][handler] confirm failed token=%s err=%v", token, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success parcel_id=%s tracking_id=%s", res.ParcelID, res.TrackingID)

	c.JSON(http.StatusOK, response.FromReconciliationResult(res))
}

// GetPaymentByParcelID returns the recorded ledger entry for a parcel.
func (h *PaymentHandler) GetPaymentByParcelID(c *gin.Context) {
	parcelID := c.Param("parcel_id")

	rec, err := h.reconcile.PaymentForParcel(c.Request.Context(), parcelID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParcelID), errors.Is(err, usecase.ErrInvalidParcelCost), errors.Is(err, usecase.ErrInvalidConfirmationToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParcelNotFound):
		return pkg.NewDomainErrorSimple("PARCEL_NOT_FOUND", "Parcel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParcelAlreadyPaid):
		return pkg.NewDomainErrorSimple("PARCEL_ALREADY_PAID", "Parcel is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotConfirmed):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIRMED", "Gateway reports the session as not paid", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, try again", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrConflictingPayment):
		return pkg.NewDomainErrorSimple("CONFLICTING_PAYMENT", "Parcel already paid under a different transaction", http.StatusConflict)
	case errors.Is(err, usecase.ErrTrackingAssignmentExhausted):
		return pkg.NewDomainErrorSimple("TRACKING_ASSIGNMENT_EXHAUSTED", "Could not assign a tracking id, retry the confirmation", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
