package response

import (
	"time"

	"zoracom_vms/internal/domain/entities"
)

type VendorResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	BusinessName     string    `json:"business_name"`
	Category         string    `json:"category"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	OtherPhoneNumber string    `json:"other_phone_number,omitempty"`
	Address          string    `json:"address"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Attachments []AttachmentResponse `json:"attachments,omitempty"`
}

func FromVendor(v entities.Vendor) VendorResponse {
	return VendorResponse{
		ID:               v.ID,
		UserID:           v.UserID,
		BusinessName:     v.BusinessName,
		Category:         v.Category,
		Email:            v.Email,
		PhoneNumber:      v.PhoneNumber,
		OtherPhoneNumber: v.OtherPhoneNumber,
		Address:          v.Address,
		Status:           string(v.Status),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromVendors(vendors []entities.Vendor) []VendorResponse {
	out := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, FromVendor(v))
	}
	return out
}

type InviteResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromInvite(i entities.Invite) InviteResponse {
	return InviteResponse{
		ID:        i.ID,
		Email:     i.Email,
		ExpiresAt: i.ExpiresAt,
	}
}
