package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
)

// UserHandler serves the users listing and the preference manager.
// Both routes sit behind the session gate.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type preferencesBody struct {
	Theme       *string `json:"theme"`
	AccentColor *string `json:"accentColor"`
}

type updatePreferencesRequest struct {
	Preferences preferencesBody `json:"preferences"`
}

type preferencesResponse struct {
	Preferences domain.Preferences `json:"preferences"`
}

// List handles GET /users. Every account, password hashes excluded.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdatePreferences handles PUT /users/preferences, a partial merge of
// the caller's theme and accent color. The user id comes from the
// session claims, never from the payload.
//
// @Summary      Update the caller's UI preferences
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updatePreferencesRequest  true  "Partial preference set"
// @Success      200   {object}  preferencesResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/preferences [put]
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	prefs, err := h.userService.UpdatePreferences(c.Request().Context(), claims.UserID(), ports.PreferencesUpdate{
		Theme:       req.Preferences.Theme,
		AccentColor: req.Preferences.AccentColor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, preferencesResponse{Preferences: *prefs})
}
