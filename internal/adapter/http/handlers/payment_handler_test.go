package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zapshift/internal/adapter/http/handlers/mocks"
	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_InitiateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parcel already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/parcels/:parcel_id/checkout", h.InitiateCheckout)

		checkout.EXPECT().InitiateCheckout(gomock.Any(), "p1").Return("", usecase.ErrParcelAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/parcels/p1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/parcels/:parcel_id/checkout", h.InitiateCheckout)

		checkout.EXPECT().InitiateCheckout(gomock.Any(), "p1").Return("", usecase.ErrGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/parcels/p1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/parcels/:parcel_id/checkout", h.InitiateCheckout)

		checkout.EXPECT().InitiateCheckout(gomock.Any(), "p1").Return("https://pay.example/sess-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/parcels/p1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["checkout_url"] != "https://pay.example/sess-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/confirm", h.ConfirmPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/confirm", h.ConfirmPayment)

		reconcile.EXPECT().ConfirmPayment(gomock.Any(), "tok-1").Return(usecase.ReconciliationResult{}, usecase.ErrPaymentNotConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("conflicting payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/confirm", h.ConfirmPayment)

		reconcile.EXPECT().ConfirmPayment(gomock.Any(), "tok-1").Return(usecase.ReconciliationResult{}, usecase.ErrConflictingPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.POST("/v1/payments/confirm", h.ConfirmPayment)

		reconcile.EXPECT().ConfirmPayment(gomock.Any(), "tok-1").Return(usecase.ReconciliationResult{
			ParcelID:      "p1",
			TrackingID:    "ZAP-20260831-deadbeef",
			TransactionID: "T1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", bytes.NewBufferString(`{"token":" tok-1 "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tracking_id"] != "ZAP-20260831-deadbeef" || body["transaction_id"] != "T1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByParcelID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.GET("/v1/parcels/:parcel_id/payment", h.GetPaymentByParcelID)

		reconcile.EXPECT().PaymentForParcel(gomock.Any(), "p1").Return(entities.PaymentRecord{}, usecase.ErrPaymentRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/p1/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockICheckoutUseCase(ctrl)
		reconcile := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewPaymentHandler(checkout, reconcile)

		r := gin.New()
		r.GET("/v1/parcels/:parcel_id/payment", h.GetPaymentByParcelID)

		reconcile.EXPECT().PaymentForParcel(gomock.Any(), "p1").Return(entities.PaymentRecord{
			ID:             "rec-1",
			IdempotencyKey: "T1",
			ParcelID:       "p1",
			Amount:         12.50,
			Currency:       "USD",
			TrackingID:     "ZAP-20260831-deadbeef",
			Status:         entities.PaymentRecordStatusRecorded,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/p1/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["transaction_id"] != "T1" || body["tracking_id"] != "ZAP-20260831-deadbeef" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidParcelID, http.StatusBadRequest},
		{usecase.ErrInvalidParcelCost, http.StatusBadRequest},
		{usecase.ErrInvalidConfirmationToken, http.StatusBadRequest},
		{usecase.ErrParcelNotFound, http.StatusNotFound},
		{usecase.ErrParcelAlreadyPaid, http.StatusConflict},
		{usecase.ErrPaymentNotConfirmed, http.StatusPaymentRequired},
		{usecase.ErrGatewayUnavailable, http.StatusBadGateway},
		{usecase.ErrConflictingPayment, http.StatusConflict},
		{usecase.ErrTrackingAssignmentExhausted, http.StatusServiceUnavailable},
		{usecase.ErrPaymentRecordNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
