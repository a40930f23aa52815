package domain

import (
	"errors"
	"time"
)

// ItemStatus represents the lifecycle state of a showcase item.
type ItemStatus string

const (
	StatusActive   ItemStatus = "active"
	StatusArchived ItemStatus = "archived"
	StatusDraft    ItemStatus = "draft"
)

const (
	// Priority bounds are inclusive.
	MinPriority = 1
	MaxPriority = 5
	// DefaultPriority is applied when a create request omits priority.
	DefaultPriority = 3
)

var ErrItemNotFound = errors.New("showcase item not found")
var ErrInvalidItemID = errors.New("malformed showcase item id")
var ErrInvalidStatus = errors.New("status must be one of: active, archived, draft")
var ErrInvalidPriority = errors.New("priority must be between 1 and 5")

// IsValid reports whether s is one of the enumerated statuses.
func (s ItemStatus) IsValid() bool {
	return s == StatusActive || s == StatusArchived || s == StatusDraft
}

// ShowcaseItem is an independently-owned content record, unrelated to
// user identity. UpdatedAt is refreshed on every mutating write.
type ShowcaseItem struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Status      ItemStatus `json:"status" bson:"status"`
	Priority    int        `json:"priority" bson:"priority"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
