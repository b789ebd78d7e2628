package handlers

import (
	"errors"
	"net/http"

	request "zoracom_vms/internal/adapter/http/dto/request"
	response "zoracom_vms/internal/adapter/http/dto/response"
	"zoracom_vms/internal/adapter/http/middleware"
	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase"
	"zoracom_vms/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)
	errMissingVendorIdentity     = pkg.NewDomainErrorSimple("FORBIDDEN", "Caller has no vendor profile", http.StatusForbidden)
)

// ApplicationHandler handles HTTP requests for vendor applications:
// bidding, review and delivery reporting.
type ApplicationHandler struct {
	usecase     usecase.IApplicationUseCase
	attachments usecase.IAttachmentUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase, attachments usecase.IAttachmentUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc, attachments: attachments}
}

// Apply files the calling vendor's bid against the listing in the path.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.VendorID == "" {
		c.JSON(errMissingVendorIdentity.HTTPStatus, errMissingVendorIdentity.ToHTTPError())
		return
	}

	var payload request.ApplyRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	application, err := h.usecase.Apply(c.Request.Context(), c.Param("id"), identity.VendorID, payload.Comment, uploads)
	if err != nil {
		// An application targets the listing named in the vendor's own
		// request, so a missing listing is the caller's error.
		if errors.Is(err, usecase.ErrListingNotFound) {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusBadRequest).ToHTTPError())
			return
		}
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromApplication(application))
}

// Review resolves a pending application to AWARDED or DECLINED. An
// award may carry contract documents as file parts.
func (h *ApplicationHandler) Review(c *gin.Context) {
	var payload request.ReviewApplicationRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	if _, ok := payload.ResolveDecision(); !ok {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REVIEW_DECISION", "Unrecognized review decision", http.StatusBadRequest).ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	application, err := h.usecase.Review(c.Request.Context(), input, uploads)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplication(application))
}

// Report files a delivery report for the calling vendor's awarded
// application on the listing in the path.
func (h *ApplicationHandler) Report(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.VendorID == "" {
		c.JSON(errMissingVendorIdentity.HTTPStatus, errMissingVendorIdentity.ToHTTPError())
		return
	}

	var payload request.ReportRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.Report(c.Request.Context(), payload.ToInput(c.Param("id"), identity.VendorID), uploads)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromListingReport(report))
}

func (h *ApplicationHandler) DeactivateApplication(c *gin.Context) {
	application, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplication(application))
}

// ListApplications returns every application filed against a listing,
// with each bid's supporting documents.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.usecase.ListByListingID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		res := response.FromApplication(a)
		parent := entities.ParentRef{Kind: entities.ParentApplication, ID: a.ID}
		if attachments, err := h.attachments.ListByParent(c.Request.Context(), parent); err == nil {
			res.Attachments = response.FromAttachments(attachments)
		}
		out = append(out, res)
	}

	c.JSON(http.StatusOK, out)
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID), errors.Is(err, usecase.ErrInvalidListingID),
		errors.Is(err, usecase.ErrInvalidReviewDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendorNotAllowed):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_ALLOWED", "Vendor is not allowed to apply to this listing", http.StatusForbidden)
	case errors.Is(err, usecase.ErrApplicationExists):
		return pkg.NewDomainErrorSimple("APPLICATION_EXISTS", "Vendor has already applied to this listing", http.StatusConflict)
	case errors.Is(err, usecase.ErrListingAlreadyAwarded):
		return pkg.NewDomainErrorSimple("LISTING_ALREADY_AWARDED", "Listing has already been awarded", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationResolved):
		return pkg.NewDomainErrorSimple("APPLICATION_RESOLVED", "Application has already been resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationNotAwarded):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_AWARDED", "Only the awarded vendor may file reports", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrListingInactive):
		return pkg.NewDomainErrorSimple("LISTING_INACTIVE", "Listing is inactive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationDeactivated):
		return pkg.NewDomainErrorSimple("APPLICATION_INACTIVE", "Application is already inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
