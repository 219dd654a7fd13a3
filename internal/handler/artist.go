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

// ArtistHandler aggregates the repositories the artist pages need. The
// routes mirror the venue routes one for one.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
	Shows   *repository.ShowRepo
	Log     zerolog.Logger
}

// List handles GET /artists: a flat listing ordered by id.
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.Artists.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("artist listing failed")
		return renderServerError(c)
	}
	data := pageData(c, "Artists")
	data["Artists"] = artists
	return c.Render(http.StatusOK, "artists.html", data)
}

// Search handles POST /artists/search with the search_term form field.
func (h *ArtistHandler) Search(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := view.SearchArtists(c.Request().Context(), h.Artists, term)
	if err != nil {
		h.Log.Error().Err(err).Msg("artist search failed")
		return renderServerError(c)
	}
	data := pageData(c, "Search artists")
	data["Term"] = term
	data["Results"] = res
	return c.Render(http.StatusOK, "search_artists.html", data)
}

// Detail handles GET /artists/:id with the artist's shows split into
// upcoming and past.
func (h *ArtistHandler) Detail(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return renderNotFound(c)
		}
		h.Log.Error().Err(err).Uint64("artist_id", id).Msg("artist fetch failed")
		return renderServerError(c)
	}
	shows, err := view.ArtistShows(c.Request().Context(), h.Shows, id, time.Now())
	if err != nil {
		h.Log.Error().Err(err).Uint64("artist_id", id).Msg("artist shows fetch failed")
		return renderServerError(c)
	}
	data := pageData(c, artist.Name)
	data["Artist"] = artist
	data["Shows"] = shows
	return c.Render(http.StatusOK, "show_artist.html", data)
}

// NewForm handles GET /artists/create.
func (h *ArtistHandler) NewForm(c echo.Context) error {
	data := pageData(c, "New artist")
	data["States"] = form.StateChoices
	data["Genres"] = form.GenreChoices
	return c.Render(http.StatusOK, "new_artist.html", data)
}

// Create handles POST /artists/create.
func (h *ArtistHandler) Create(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return renderServerError(c)
	}
	f, err := form.ParseArtistForm(values)
	if err != nil {
		setFlash(c, "An error occurred. "+err.Error()+".")
		return c.Redirect(http.StatusSeeOther, "/artists/create")
	}
	artist := &repository.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		Genres:             f.Genres,
	}
	if err := h.Artists.Create(c.Request().Context(), artist); err != nil {
		if !errors.Is(err, repository.ErrConstraint) {
			h.Log.Error().Err(err).Str("artist", f.Name).Msg("artist create failed")
		}
		data := pageData(c, "Home")
		data["Flash"] = "An error occurred. Artist " + f.Name + " could not be listed."
		return c.Render(http.StatusOK, "home.html", data)
	}
	data := pageData(c, "Home")
	data["Flash"] = "Artist " + f.Name + " was successfully listed!"
	return c.Render(http.StatusOK, "home.html", data)
}

// EditForm handles GET /artists/:id/edit, prefilled with current values.
func (h *ArtistHandler) EditForm(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return renderNotFound(c)
		}
		h.Log.Error().Err(err).Uint64("artist_id", id).Msg("artist fetch failed")
		return renderServerError(c)
	}
	data := pageData(c, "Edit "+artist.Name)
	data["Artist"] = artist
	data["States"] = form.StateChoices
	data["Genres"] = form.GenreChoices
	data["SelectedGenres"] = genreSelection(artist.Genres)
	return c.Render(http.StatusOK, "edit_artist.html", data)
}

// Edit handles POST /artists/:id/edit: a full-replace update of every
// mutable field.
func (h *ArtistHandler) Edit(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	values, err := c.FormParams()
	if err != nil {
		return renderServerError(c)
	}
	f, err := form.ParseArtistForm(values)
	if err != nil {
		setFlash(c, "An error occurred. "+err.Error()+".")
		return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
	}
	update := repository.ArtistUpdate{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		Genres:             f.Genres,
	}
	if err := h.Artists.Update(c.Request().Context(), id, update); err != nil {
		switch {
		case errors.Is(err, repository.ErrArtistNotFound):
			return renderNotFound(c)
		case errors.Is(err, repository.ErrConstraint):
			setFlash(c, "An error occurred. Artist "+f.Name+" could not be updated.")
			return c.Redirect(http.StatusSeeOther, c.Request().URL.Path)
		default:
			h.Log.Error().Err(err).Uint64("artist_id", id).Msg("artist update failed")
			return renderServerError(c)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/artists/"+c.Param("id"))
}

// Delete handles GET /delete_artist/:id. Absent ids are a no-op.
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return renderNotFound(c)
	}
	if err := h.Artists.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error().Err(err).Uint64("artist_id", id).Msg("artist delete failed")
		return renderServerError(c)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
