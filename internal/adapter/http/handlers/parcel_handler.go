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

var errInvalidParcelPayload = pkg.NewDomainErrorSimple("INVALID_PARCEL_INPUT", "Invalid parcel payload", http.StatusBadRequest)

// ParcelHandler handles HTTP requests for parcel CRUD.

type ParcelHandler struct {
	usecase usecase.IParcelUseCase
}

func NewParcelHandler(uc usecase.IParcelUseCase) *ParcelHandler {
	return &ParcelHandler{usecase: uc}
}

// CreateParcel registers a new pending parcel.
func (h *ParcelHandler) CreateParcel(c *gin.Context) {
	var payload request.CreateParcelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParcelPayload.HTTPStatus, errInvalidParcelPayload.ToHTTPError())
		return
	}
	payload = payload.Normalized()

	p, err := h.usecase.CreateParcel(c.Request.Context(), payload.SenderEmail, payload.ParcelName, payload.Cost)
	if err != nil {
		log.Printf("[parcel][handler] create failed err=%v", err)
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParcel(p))
}

// GetParcel returns a parcel by ID.
func (h *ParcelHandler) GetParcel(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("parcel_id"))
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParcel(p))
}

// ListParcels returns all parcels, optionally filtered by sender email.
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	parcels, err := h.usecase.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParcels(parcels))
}

// DeleteParcel removes a pending parcel. Parcels referenced by a payment
// record are rejected with a conflict.
func (h *ParcelHandler) DeleteParcel(c *gin.Context) {
	parcelID := c.Param("parcel_id")
	if err := h.usecase.DeleteParcel(c.Request.Context(), parcelID); err != nil {
		log.Printf("[parcel][handler] delete failed parcel_id=%s err=%v", parcelID, err)
		appErr := mapParcelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapParcelError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParcelID), errors.Is(err, usecase.ErrInvalidParcelInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParcelNotFound):
		return pkg.NewDomainErrorSimple("PARCEL_NOT_FOUND", "Parcel not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParcelHasPayment):
		return pkg.NewDomainErrorSimple("PARCEL_HAS_PAYMENT", "Parcel has a payment record and cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
