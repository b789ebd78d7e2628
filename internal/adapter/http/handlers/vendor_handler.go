package handlers

import (
	"errors"
	"net/http"

	request "zoracom_vms/internal/adapter/http/dto/request"
	response "zoracom_vms/internal/adapter/http/dto/response"
	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"
	"zoracom_vms/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVendorPayload = pkg.NewDomainErrorSimple("INVALID_VENDOR_INPUT", "Invalid vendor payload", http.StatusBadRequest)

// VendorHandler handles HTTP requests for vendor onboarding: invites,
// registration and approval review.
type VendorHandler struct {
	usecase     usecase.IVendorUseCase
	invites     usecase.IInviteUseCase
	attachments usecase.IAttachmentUseCase
}

func NewVendorHandler(uc usecase.IVendorUseCase, invites usecase.IInviteUseCase, attachments usecase.IAttachmentUseCase) *VendorHandler {
	return &VendorHandler{usecase: uc, invites: invites, attachments: attachments}
}

func (h *VendorHandler) SendInvite(c *gin.Context) {
	var payload request.SendInviteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	invite, err := h.invites.Issue(c.Request.Context(), payload.Email)
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvite(invite))
}

// RegisterVendor consumes an invite and creates the user account, the
// vendor profile and any uploaded documents in one shot.
func (h *VendorHandler) RegisterVendor(c *gin.Context) {
	var payload request.RegisterVendorRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vendor, err := h.usecase.Register(c.Request.Context(), payload.ToInput(), uploads)
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVendor(vendor))
}

func (h *VendorHandler) ReviewVendorStatus(c *gin.Context) {
	var payload request.VendorStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	status, ok := payload.ResolveStatus()
	if !ok {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_VENDOR_STATUS", "Unrecognized vendor status", http.StatusBadRequest).ToHTTPError())
		return
	}

	vendor, err := h.usecase.ReviewStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendor(vendor))
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromVendor(vendor)
	parent := entities.ParentRef{Kind: entities.ParentVendor, ID: vendor.ID}
	if attachments, err := h.attachments.ListByParent(c.Request.Context(), parent); err == nil {
		res.Attachments = response.FromAttachments(attachments)
	}

	c.JSON(http.StatusOK, res)
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendors(vendors))
}

func mapVendorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVendorID), errors.Is(err, usecase.ErrInvalidVendorStatus),
		errors.Is(err, usecase.ErrMissingVendorFields), errors.Is(err, usecase.ErrInvalidInviteEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvite):
		return pkg.NewDomainErrorSimple("INVALID_INVITE", "Invite is invalid or has expired", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInviteeAlreadyVendor):
		return pkg.NewDomainErrorSimple("VENDOR_EXISTS", "A vendor already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email has been used", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhoneNumberTaken):
		return pkg.NewDomainErrorSimple("PHONE_NUMBER_TAKEN", "Phone number has been used", http.StatusConflict)
	case errors.Is(err, usecase.ErrVendorStatusUnchanged):
		return pkg.NewDomainErrorSimple("VENDOR_STATUS_UNCHANGED", "Vendor already in requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapUploadError(err error) *pkg.AppError {
	if errors.Is(err, errUploadTooLarge) {
		return pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "Uploaded file exceeds the size limit", http.StatusRequestEntityTooLarge)
	}
	return pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Could not read uploaded files", http.StatusBadRequest)
}
