package usecase

import (
	"context"
	"errors"
	"strings"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("similar category exists")
	ErrCategoryInUse       = errors.New("category is referenced by listings")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("invalid category name")
)

// ICategoryUseCase is the category registry consumed by the listing
// lifecycle.
type ICategoryUseCase interface {
	Create(ctx context.Context, name, description string) (entities.Category, error)
	Update(ctx context.Context, id, name string) (entities.Category, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
}

type CategoryUseCase struct {
	repo        interfaces.ICategoryRepository
	listingRepo interfaces.IListingRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository, listingRepo interfaces.IListingRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, listingRepo: listingRepo}
}

func (u *CategoryUseCase) Create(ctx context.Context, name, description string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	similar, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Category{}, err
	}
	if similar.ID != "" {
		return entities.Category{}, ErrCategoryExists
	}

	c := entities.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	return u.repo.Create(ctx, c)
}

func (u *CategoryUseCase) Update(ctx context.Context, id, name string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}

	similar, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Category{}, err
	}
	if similar.ID != "" && similar.ID != id {
		return entities.Category{}, ErrCategoryExists
	}

	existing.Name = name
	return u.repo.Update(ctx, existing)
}

// Delete removes a category. Categories still referenced by a listing
// are protected here, not by the store.
func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCategoryNotFound
	}

	inUse, err := u.listingRepo.ExistsByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}

	return u.repo.Delete(ctx, id)
}

func (u *CategoryUseCase) GetByID(ctx context.Context, id string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}
