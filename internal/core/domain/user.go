package domain

import (
	"errors"
	"time"
)

// Theme is the UI color scheme a user has picked.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultAccentColor is applied to new accounts until the user picks one.
const DefaultAccentColor = "#0000FF"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrNoUsers = errors.New("no users found")
var ErrInvalidUserID = errors.New("malformed user id")
var ErrMissingFields = errors.New("email and password are required")
var ErrInvalidTheme = errors.New("theme must be one of: light, dark, system")

// IsValid reports whether t is one of the supported themes.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Preferences is the per-user UI customization set.
type Preferences struct {
	Theme       Theme  `json:"theme" bson:"theme"`
	AccentColor string `json:"accentColor" bson:"accent_color"`
}

// DefaultPreferences returns the preference set assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeSystem, AccentColor: DefaultAccentColor}
}

// User models a dashboard account. PasswordHash never serializes to JSON.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
