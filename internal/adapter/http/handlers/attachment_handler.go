package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"zoracom_vms/internal/usecase"
	"zoracom_vms/pkg"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler serves stored documents back to authenticated
// callers.
type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

func (h *AttachmentHandler) Download(c *gin.Context) {
	attachment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAttachmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.Name))
	c.Data(http.StatusOK, attachment.MimeType, attachment.Bytes)
}

func mapAttachmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAttachmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
