package handler

import (
	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createItemRequest) ports.CreateItemInput {
	return ports.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
}

func toUpdateInput(req updateItemRequest) ports.UpdateItemInput {
	return ports.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
}

// --- Domain → HTTP response ---

func toItemResponse(item *domain.ShowcaseItem) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Status:      string(item.Status),
		Priority:    item.Priority,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func toItemListResponse(items []*domain.ShowcaseItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
