package handler

import "github.com/acmecorp/adminboard/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Details is populated for validation failures only.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// messageResponse is the envelope for simple confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the sanitized account view. The domain model already
// excludes the password hash from JSON; this type additionally pins the
// wire contract to the transport layer.
type userResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Username    string             `json:"username"`
	Preferences domain.Preferences `json:"preferences"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Preferences: u.Preferences,
	}
}
