package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"showbill/internal/form"
	"showbill/internal/repository"
)

// ShowHandler serves the flat show listing and the booking form.
type ShowHandler struct {
	Shows *repository.ShowRepo
	Log   zerolog.Logger
}

// List handles GET /shows: every show joined with its venue and artist.
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("show listing failed")
		return renderServerError(c)
	}
	data := pageData(c, "Shows")
	data["Shows"] = shows
	return c.Render(http.StatusOK, "shows.html", data)
}

// NewForm handles GET /shows/create.
func (h *ShowHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new_show.html", pageData(c, "Book a show"))
}

// Create handles POST /shows/create. A venue or artist id that references
// no existing row surfaces as a flash message, not a failure page.
func (h *ShowHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return renderServerError(c)
	}
	f, err := form.ParseShowForm(values)
	if err != nil {
		setFlash(c, "An error occurred. "+err.Error()+".")
		return c.Redirect(http.StatusSeeOther, "/shows/create")
	}
	show := &repository.Show{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: f.StartTime,
	}
	if err := h.Shows.Create(c.Request().Context(), show); err != nil {
		if !errors.Is(err, repository.ErrConstraint) {
			h.Log.Error().Err(err).Msg("show create failed")
		}
		data := pageData(c, "Home")
		data["Flash"] = "An error occurred. Show could not be listed."
		return c.Render(http.StatusOK, "home.html", data)
	}
	data := pageData(c, "Home")
	data["Flash"] = "Show was successfully listed!"
	return c.Render(http.StatusOK, "home.html", data)
}
