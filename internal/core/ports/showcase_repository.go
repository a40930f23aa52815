package ports

import (
	"context"
	"time"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// ListItemsFilter carries the optional query parameters for listing
// showcase items. A zero filter returns everything.
type ListItemsFilter struct {
	Status string // optional equality filter on the indexed status field
}

// ItemUpdate is a partial field set for an update. Nil fields are left
// untouched. UpdatedAt is always written by the service.
type ItemUpdate struct {
	Title       *string
	Description *string
	Status      *domain.ItemStatus
	Priority    *int
	UpdatedAt   time.Time
}

// ShowcaseRepository defines persistence operations for showcase items.
// All id-taking methods return domain.ErrInvalidItemID for a malformed
// id and domain.ErrItemNotFound for a well-formed but absent one.
type ShowcaseRepository interface {
	Create(ctx context.Context, item *domain.ShowcaseItem) (*domain.ShowcaseItem, error)
	FindByID(ctx context.Context, id string) (*domain.ShowcaseItem, error)
	// List returns items matching filter, newest-created-first.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.ShowcaseItem, error)
	Update(ctx context.Context, id string, update ItemUpdate) (*domain.ShowcaseItem, error)
	Delete(ctx context.Context, id string) error
}
