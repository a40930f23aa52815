package ports

import (
	"context"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// CreateItemInput carries the fields for a new showcase item. Status
// and Priority default to draft / 3 when omitted.
type CreateItemInput struct {
	Title       string
	Description string
	Status      string
	Priority    *int
}

// UpdateItemInput is the partial field set accepted by Update.
type UpdateItemInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
}

// ShowcaseService defines the CRUD use cases over showcase items. It is
// independent of authentication; the router composes the session gate
// in front of it.
type ShowcaseService interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.ShowcaseItem, error)
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.ShowcaseItem, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*domain.ShowcaseItem, error)
	Delete(ctx context.Context, id string) error
}
