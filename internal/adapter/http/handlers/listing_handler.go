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

var errInvalidListingPayload = pkg.NewDomainErrorSimple("INVALID_LISTING_INPUT", "Invalid listing payload", http.StatusBadRequest)

// ListingHandler handles HTTP requests for job listings: CRUD plus the
// status state machine.
type ListingHandler struct {
	usecase     usecase.IListingUseCase
	attachments usecase.IAttachmentUseCase
}

func NewListingHandler(uc usecase.IListingUseCase, attachments usecase.IAttachmentUseCase) *ListingHandler {
	return &ListingHandler{usecase: uc, attachments: attachments}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var payload request.CreateListingRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidListingPayload.HTTPStatus, errInvalidListingPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	listing, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), uploads)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromListing(listing))
}

// UpdateListing replaces the listing's fields, vendor restriction and
// attachments with the submitted set. Previously uploaded documents not
// resubmitted are removed.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var payload request.UpdateListingRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidListingPayload.HTTPStatus, errInvalidListingPayload.ToHTTPError())
		return
	}

	uploads, err := readUploads(c)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	listing, err := h.usecase.Update(c.Request.Context(), payload.ToInput(c.Param("id")), uploads)
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(listing))
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// AdvanceListing moves a listing forward to ONGOING or DELIVERED.
func (h *ListingHandler) AdvanceListing(c *gin.Context) {
	var payload request.ListingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidListingPayload.HTTPStatus, errInvalidListingPayload.ToHTTPError())
		return
	}

	listing, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(listing))
}

func (h *ListingHandler) DeactivateListing(c *gin.Context) {
	listing, err := h.usecase.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(listing))
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromListing(listing)
	parent := entities.ParentRef{Kind: entities.ParentListing, ID: listing.ID}
	if attachments, err := h.attachments.ListByParent(c.Request.Context(), parent); err == nil {
		res.Attachments = response.FromAttachments(attachments)
	}

	c.JSON(http.StatusOK, res)
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListings(listings))
}

func mapListingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListingID), errors.Is(err, usecase.ErrMissingListingFields),
		errors.Is(err, usecase.ErrInvalidListingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotAwarded):
		return pkg.NewDomainErrorSimple("LISTING_NOT_AWARDED", "Listing must be awarded before it can advance", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrListingStatusUnchanged):
		return pkg.NewDomainErrorSimple("LISTING_STATUS_UNCHANGED", "Listing already in requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrListingStatusBackward):
		return pkg.NewDomainErrorSimple("LISTING_STATUS_BACKWARD", "Listing status cannot move backward", http.StatusConflict)
	case errors.Is(err, usecase.ErrListingTerminal):
		return pkg.NewDomainErrorSimple("LISTING_TERMINAL", "Listing is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrListingStatusMoved):
		return pkg.NewDomainErrorSimple("LISTING_STATUS_MOVED", "Listing status changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
