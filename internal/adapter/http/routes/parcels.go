package routes

import (
	"zapshift/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathParcels  = "/parcels"
	PathPayments = "/payments"
)

func addParcelRoutes(rg *gin.RouterGroup, parcelHandler *handlers.ParcelHandler, paymentHandler *handlers.PaymentHandler) {
	parcels := rg.Group(PathParcels)
	{
		parcels.POST("", parcelHandler.CreateParcel)
		parcels.GET("", parcelHandler.ListParcels)
		parcels.GET("/:parcel_id", parcelHandler.GetParcel)
		parcels.DELETE("/:parcel_id", parcelHandler.DeleteParcel)

		parcels.POST("/:parcel_id/checkout", paymentHandler.InitiateCheckout)
		parcels.GET("/:parcel_id/payment", paymentHandler.GetPaymentByParcelID)
	}

	payments := rg.Group(PathPayments)
	{
		// Hit by the client after the gateway redirects back, and by the
		// gateway webhook; both may deliver the same confirmation more than
		// once.
		payments.POST("/confirm", paymentHandler.ConfirmPayment)
	}
}
