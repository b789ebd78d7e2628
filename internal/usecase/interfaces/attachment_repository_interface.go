package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// IAttachmentRepository abstracts DynamoDB persistence for Attachment
// and is the linker between uploaded blobs and their parent entity.
//
// Attach is pure append. Replace is delete-then-attach and is used only
// by listing update, which has documented full-replace semantics.
type IAttachmentRepository interface {
	Attach(ctx context.Context, parent entities.ParentRef, files []entities.FileUpload) ([]entities.Attachment, error)
	Replace(ctx context.Context, parent entities.ParentRef, files []entities.FileUpload) ([]entities.Attachment, error)
	DeleteByParent(ctx context.Context, parent entities.ParentRef) error
	GetByID(ctx context.Context, id string) (entities.Attachment, error)
	ListByParent(ctx context.Context, parent entities.ParentRef) ([]entities.Attachment, error)
}
