// Package handler exposes the HTTP handlers behind the directory's routes.
// Handlers parse input, call the repositories and the view package, and
// render HTML pages. Each handler struct holds the repositories it needs so
// the store is injected rather than shared process-wide.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageData assembles the map every template renders from: the page title
// plus any pending flash message. Callers add their own keys on top.
func pageData(c echo.Context, title string) echo.Map {
	return echo.Map{
		"Title": title,
		"Flash": takeFlash(c),
	}
}

// paramID parses the :id route parameter. A non-numeric id is treated the
// same as an absent record.
func paramID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// renderNotFound renders the 404 page.
func renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", pageData(c, "Not found"))
}

// renderServerError renders the generic 500 page. The request dies here but
// the process keeps serving.
func renderServerError(c echo.Context) error {
	return c.Render(http.StatusInternalServerError, "500.html", pageData(c, "Server error"))
}

// genreSelection marks an entity's genres for the edit form's multi-select.
func genreSelection(genres []string) map[string]bool {
	sel := make(map[string]bool, len(genres))
	for _, g := range genres {
		sel[g] = true
	}
	return sel
}
