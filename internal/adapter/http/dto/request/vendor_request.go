package request

import (
	"strings"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"
)

type SendInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterVendorRequest is bound from the multipart form posted by the
// registration page. Uploaded documents travel as file parts and are read
// separately by the handler.
type RegisterVendorRequest struct {
	InviteToken         string `form:"invite_token" binding:"required"`
	FirstName           string `form:"first_name" binding:"required"`
	LastName            string `form:"last_name" binding:"required"`
	Email               string `form:"email" binding:"required,email"`
	PhoneNumber         string `form:"phone_number" binding:"required"`
	Address             string `form:"address"`
	BusinessName        string `form:"business_name" binding:"required"`
	BusinessEmail       string `form:"business_email" binding:"required,email"`
	BusinessPhoneNumber string `form:"business_phone_number" binding:"required"`
	OtherPhoneNumber    string `form:"other_phone_number"`
	BusinessAddress     string `form:"business_address"`
	Category            string `form:"category"`
}

func (r RegisterVendorRequest) ToInput() usecase.RegisterVendorInput {
	return usecase.RegisterVendorInput{
		InviteToken:         r.InviteToken,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		PhoneNumber:         r.PhoneNumber,
		Address:             r.Address,
		BusinessName:        r.BusinessName,
		BusinessEmail:       r.BusinessEmail,
		BusinessPhoneNumber: r.BusinessPhoneNumber,
		OtherPhoneNumber:    r.OtherPhoneNumber,
		BusinessAddress:     r.BusinessAddress,
		Category:            r.Category,
	}
}

type VendorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus normalizes the wire value and rejects anything outside the
// review enumeration.
func (r VendorStatusRequest) ResolveStatus() (entities.VendorStatus, bool) {
	status := entities.VendorStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if !entities.ValidVendorReviewStatus(status) {
		return "", false
	}
	return status, true
}
