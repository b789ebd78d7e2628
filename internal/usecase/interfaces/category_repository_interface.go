package interfaces

import (
	"context"

	"zoracom_vms/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for Category.
//
// Lookups return the zero value (empty ID) when no row matches; callers
// translate that into their own not-found errors.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	GetByName(ctx context.Context, name string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}
