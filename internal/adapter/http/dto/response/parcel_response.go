package response

import (
	"time"

	"zapshift/internal/domain/entities"
)

type ParcelResponse struct {
	ID          string    `json:"id"`
	SenderEmail string    `json:"sender_email"`
	ParcelName  string    `json:"parcel_name"`
	Cost        string    `json:"cost"`
	Status      string    `json:"status"`
	TrackingID  string    `json:"tracking_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromParcel(p entities.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:          p.ID,
		SenderEmail: p.SenderEmail,
		ParcelName:  p.ParcelName,
		Cost:        p.Cost,
		Status:      string(p.Status),
		TrackingID:  p.TrackingID,
		CreatedAt:   p.CreatedAt,
	}
}

func FromParcels(parcels []entities.Parcel) []ParcelResponse {
	out := make([]ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, FromParcel(p))
	}
	return out
}
