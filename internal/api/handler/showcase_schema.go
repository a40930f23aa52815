package handler

import "time"

type createItemRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=active archived draft"`
	Priority    *int   `json:"priority"    validate:"omitempty,min=1,max=5"`
}

// updateItemRequest is a partial update; nil fields are left untouched.
// The id can travel in the URL path or in the body; older dashboard
// clients send it as "_id".
type updateItemRequest struct {
	ID          string  `json:"id"`
	LegacyID    string  `json:"_id"`
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status"      validate:"omitempty,oneof=active archived draft"`
	Priority    *int    `json:"priority"    validate:"omitempty,min=1,max=5"`
}

// itemResponse pins the showcase JSON contract to the transport layer,
// decoupled from the domain model.
type itemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
