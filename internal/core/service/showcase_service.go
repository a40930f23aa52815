package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/acmecorp/adminboard/internal/api/metrics"
	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
)

// ShowcaseService implements CRUD over showcase items. It has no
// dependency on the auth stack; the router composes the session gate in
// front of its handlers.
type ShowcaseService struct {
	repo   ports.ShowcaseRepository
	logger zerolog.Logger
}

func NewShowcaseService(repo ports.ShowcaseRepository, logger zerolog.Logger) *ShowcaseService {
	return &ShowcaseService{repo: repo, logger: logger}
}

// Create validates and persists a new item. Status defaults to draft,
// priority to 3. Priority bounds are inclusive: 1 and 5 are valid.
func (s *ShowcaseService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.ShowcaseItem, error) {
	status := domain.ItemStatus(input.Status)
	if input.Status == "" {
		status = domain.StatusDraft
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	priority := domain.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}
	if priority < domain.MinPriority || priority > domain.MaxPriority {
		return nil, domain.ErrInvalidPriority
	}

	now := time.Now().UTC()
	item := &domain.ShowcaseItem{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		metrics.ShowcaseOpsTotal.WithLabelValues("create", "failure").Inc()
		return nil, err
	}

	metrics.ShowcaseOpsTotal.WithLabelValues("create", "success").Inc()
	s.logger.Info().Str("item_id", created.ID).Str("status", string(created.Status)).Msg("showcase item created")
	return created, nil
}

// List returns items matching filter, newest-created-first. An empty
// filter returns everything; an empty result is not an error.
func (s *ShowcaseService) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.ShowcaseItem, error) {
	if filter.Status != "" && !domain.ItemStatus(filter.Status).IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// Update merges the supplied fields into the stored item and refreshes
// updated_at. Supplied fields are validated against the schema before
// any write.
func (s *ShowcaseService) Update(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.ShowcaseItem, error) {
	update := ports.ItemUpdate{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		UpdatedAt:   time.Now().UTC(),
	}

	if input.Status != nil {
		status := domain.ItemStatus(*input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		update.Status = &status
	}
	if input.Priority != nil && (*input.Priority < domain.MinPriority || *input.Priority > domain.MaxPriority) {
		return nil, domain.ErrInvalidPriority
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		metrics.ShowcaseOpsTotal.WithLabelValues("update", "failure").Inc()
		return nil, err
	}

	metrics.ShowcaseOpsTotal.WithLabelValues("update", "success").Inc()
	s.logger.Info().Str("item_id", updated.ID).Msg("showcase item updated")
	return updated, nil
}

// Delete removes the item. There is no soft-delete.
func (s *ShowcaseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		metrics.ShowcaseOpsTotal.WithLabelValues("delete", "failure").Inc()
		return err
	}
	metrics.ShowcaseOpsTotal.WithLabelValues("delete", "success").Inc()
	s.logger.Info().Str("item_id", id).Msg("showcase item deleted")
	return nil
}
