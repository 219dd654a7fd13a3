package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"showbill/internal/form"
	"showbill/internal/repository"
	"showbill/internal/view"
)

// VenueHandler aggregates the repositories the venue pages need.
type VenueHandler struct {
	Venues *repository.VenueRepo
	Shows  *repository.ShowRepo
	Log    zerolog.Logger
}

// List handles GET /venues: every venue grouped by city/state, each
// annotated with its upcoming-show count as of now.
func (h *VenueHandler) List(c echo.Context) error {
	areas, err := view.GroupVenues(c.Request().Context(), h.Venues, h.Shows, time.Now())
	if err != nil {
		h.Log.Error().Err(err).Msg("venue grouping failed")
		return renderServerError(c)
	}
	data := pageData(c, "Venues")
	data["Areas"] = areas
	return c.Render(http.StatusOK, "venues.html", data)
}

// Search handles POST /venues/search with the search_term form field.
func (h *VenueHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := view.SearchVenues(c.Request().Context(), h.Venues, term)
	if err != nil {
		h.Log.Error().Err(err).Msg("venue search failed")
		return renderServerError(c)
	}
	data := pageData(c, "Search venues")
	data["Term"] = term
	data["Results"] = res
	return c.Render(http.StatusOK, "search_venues.html", data)
}

// Detail handles GET /venues/:id: the venue's fields plus its shows split
// into upcoming and past.
func (h *VenueHandler) Detail(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return renderNotFound(c)
		}
		h.Log.Error().Err(err).Uint64("venue_id", id).Msg("venue fetch failed")
		return renderServerError(c)
	}
	shows, err := view.VenueShows(c.Request().Context(), h.Shows, id, time.Now())
	if err != nil {
		h.Log.Error().Err(err).Uint64("venue_id", id).Msg("venue shows fetch failed")
		return renderServerError(c)
	}
	data := pageData(c, venue.Name)
	data["Venue"] = venue
	data["Shows"] = shows
	return c.Render(http.StatusOK, "show_venue.html", data)
}

// NewForm handles GET /venues/create.
func (h *VenueHandler) NewForm(c echo.Context) error {
	data := pageData(c, "New venue")
	data["States"] = form.StateChoices
	data["Genres"] = form.GenreChoices
	return c.Render(http.StatusOK, "new_venue.html", data)
}

// Create handles POST /venues/create. Validation failures and constraint
// violations flash a message and leave the store untouched.
func (h *VenueHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return renderServerError(c)
	}
	f, err := form.ParseVenueForm(values)
	if err != nil {
		setFlash(c, "An error occurred. "+err.Error()+".")
		return c.Redirect(http.StatusSeeOther, "/venues/create")
	}
	venue := &repository.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
		Genres:             f.Genres,
	}
	if err := h.Venues.Create(c.Request().Context(), venue); err != nil {
		if !errors.Is(err, repository.ErrConstraint) {
			h.Log.Error().Err(err).Str("venue", f.Name).Msg("venue create failed")
		}
		data := pageData(c, "Home")
		data["Flash"] = "An error occurred. Venue " + f.Name + " could not be listed."
		return c.Render(http.StatusOK, "home.html", data)
	}
	data := pageData(c, "Home")
	data["Flash"] = "Venue " + f.Name + " was successfully listed!"
	return c.Render(http.StatusOK, "home.html", data)
}

// EditForm handles GET /venues/:id/edit, prefilled with current values.
func (h *VenueHandler) EditForm(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return renderNotFound(c)
		}
		h.Log.Error().Err(err).Uint64("venue_id", id).Msg("venue fetch failed")
		return renderServerError(c)
	}
	data := pageData(c, "Edit "+venue.Name)
	data["Venue"] = venue
	data["States"] = form.StateChoices
	data["Genres"] = form.GenreChoices
	data["SelectedGenres"] = genreSelection(venue.Genres)
	return c.Render(http.StatusOK, "edit_venue.html", data)
}

// Edit handles POST /venues/:id/edit: a full-replace update of every
// mutable field, then a redirect back to the detail page.
func (h *VenueHandler) Edit(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	values, err := c.FormParams()
	if err != nil {
		return renderServerError(c)
	}
	f, err := form.ParseVenueForm(values)
	if err != nil {
		setFlash(c, "An error occurred. "+err.Error()+".")
		return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
	}
	update := repository.VenueUpdate{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
		Genres:             f.Genres,
	}
	if err := h.Venues.Update(c.Request().Context(), id, update); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			return renderNotFound(c)
		case errors.Is(err, repository.ErrConstraint):
			setFlash(c, "An error occurred. Venue "+f.Name+" could not be updated.")
			return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
		default:
			h.Log.Error().Err(err).Uint64("venue_id", id).Msg("venue update failed")
			return renderServerError(c)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/venues/"+c.Param("id"))
}

// Delete handles GET /delete_venue/:id. Deleting an absent venue is a
// no-op; either way the user lands back on the home page.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	if err := h.Venues.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error().Err(err).Uint64("venue_id", id).Msg("venue delete failed")
		return renderServerError(c)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
