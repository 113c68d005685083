package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zapshift/internal/adapter/http/handlers/mocks"
	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestParcelHandler_CreateParcel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.POST("/v1/parcels", h.CreateParcel)

		req := httptest.NewRequest(http.MethodPost, "/v1/parcels", bytes.NewBufferString(`{"sender_email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.POST("/v1/parcels", h.CreateParcel)

		now := time.Now().UTC()
		uc.EXPECT().CreateParcel(gomock.Any(), "a@b.com", "books", "12.50").Return(entities.Parcel{
			ID:          "p1",
			SenderEmail: "a@b.com",
			ParcelName:  "books",
			Cost:        "12.50",
			Status:      entities.ParcelStatusPending,
			CreatedAt:   now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/parcels", bytes.NewBufferString(`{"sender_email":"A@B.com","parcel_name":"books","cost":"12.50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, present := body["tracking_id"]; present {
			t.Fatalf("pending parcel must not expose a tracking id: %s", w.Body.String())
		}
	})
}

func TestParcelHandler_GetParcel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.GET("/v1/parcels/:parcel_id", h.GetParcel)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Parcel{}, usecase.ErrParcelNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.GET("/v1/parcels/:parcel_id", h.GetParcel)

		uc.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Parcel{
			ID:         "p1",
			Status:     entities.ParcelStatusPaid,
			TrackingID: "ZAP-20260831-deadbeef",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/parcels/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tracking_id"] != "ZAP-20260831-deadbeef" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestParcelHandler_ListParcels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIParcelUseCase(ctrl)
	h := NewParcelHandler(uc)

	r := gin.New()
	r.GET("/v1/parcels", h.ListParcels)

	uc.EXPECT().List(gomock.Any(), "a@b.com").Return([]entities.Parcel{{ID: "p1"}, {ID: "p2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/parcels?email=a@b.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 parcels, got body: %s", w.Body.String())
	}
}

func TestParcelHandler_DeleteParcel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("has payment record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.DELETE("/v1/parcels/:parcel_id", h.DeleteParcel)

		uc.EXPECT().DeleteParcel(gomock.Any(), "p1").Return(usecase.ErrParcelHasPayment)

		req := httptest.NewRequest(http.MethodDelete, "/v1/parcels/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIParcelUseCase(ctrl)
		h := NewParcelHandler(uc)

		r := gin.New()
		r.DELETE("/v1/parcels/:parcel_id", h.DeleteParcel)

		uc.EXPECT().DeleteParcel(gomock.Any(), "p1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/parcels/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapParcelError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidParcelID, http.StatusBadRequest},
		{usecase.ErrInvalidParcelInput, http.StatusBadRequest},
		{usecase.ErrParcelNotFound, http.StatusNotFound},
		{usecase.ErrParcelHasPayment, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapParcelError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
