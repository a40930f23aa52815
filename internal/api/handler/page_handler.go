package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the built dashboard bundle on page routes. The
// session gate in front of it decides who gets the page at all; the
// SPA handles everything past index.html.
type PageHandler struct {
	staticDir string
}

func NewPageHandler(staticDir string) *PageHandler {
	return &PageHandler{staticDir: staticDir}
}

func (h *PageHandler) Serve(c echo.Context) error {
	return c.File(filepath.Join(h.staticDir, "index.html"))
}
