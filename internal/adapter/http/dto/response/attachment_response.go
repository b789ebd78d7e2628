package response

import (
	"time"

	"zoracom_vms/internal/domain/entities"
)

// AttachmentResponse is attachment metadata only; bytes are served by
// the download endpoint.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	ParentKind string    `json:"parent_kind"`
	ParentID   string    `json:"parent_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromAttachment(a entities.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID,
		Name:       a.Name,
		Size:       a.Size,
		MimeType:   a.MimeType,
		ParentKind: string(a.Parent.Kind),
		ParentID:   a.Parent.ID,
		CreatedAt:  a.CreatedAt,
	}
}

func FromAttachments(attachments []entities.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, FromAttachment(a))
	}
	return out
}
