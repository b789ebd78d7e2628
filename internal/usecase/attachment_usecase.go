package usecase

import (
	"context"
	"errors"
	"strings"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"
)

var (
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrInvalidAttachmentID = errors.New("invalid attachment id")
)

// IAttachmentUseCase serves stored documents back by id. Writing goes
// through the owning workflows, never here.
type IAttachmentUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Attachment, error)
	ListByParent(ctx context.Context, parent entities.ParentRef) ([]entities.Attachment, error)
}

type AttachmentUseCase struct {
	repo interfaces.IAttachmentRepository
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(repo interfaces.IAttachmentRepository) *AttachmentUseCase {
	return &AttachmentUseCase{repo: repo}
}

func (u *AttachmentUseCase) GetByID(ctx context.Context, id string) (entities.Attachment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Attachment{}, ErrInvalidAttachmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Attachment{}, err
	}
	if a.ID == "" {
		return entities.Attachment{}, ErrAttachmentNotFound
	}
	return a, nil
}

func (u *AttachmentUseCase) ListByParent(ctx context.Context, parent entities.ParentRef) ([]entities.Attachment, error) {
	return u.repo.ListByParent(ctx, parent)
}
