package request

import "strings"

// CreateParcelRequest is the payload for parcel registration. Cost is
// accepted as a string because senders type it free-form; validation to a
// positive amount happens at checkout time.
type CreateParcelRequest struct {
	SenderEmail string `json:"sender_email" binding:"required,email"`
	ParcelName  string `json:"parcel_name" binding:"required"`
	Cost        string `json:"cost" binding:"required"`
}

func (r CreateParcelRequest) Normalized() CreateParcelRequest {
	return CreateParcelRequest{
		SenderEmail: strings.TrimSpace(strings.ToLower(r.SenderEmail)),
		ParcelName:  strings.TrimSpace(r.ParcelName),
		Cost:        strings.TrimSpace(r.Cost),
	}
}
