package router // package router defines how HTTP routes are registered for the app

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"showbill/internal/handler" // import the handlers that implement page logic
)

// RegisterRoutes wires every route of the directory onto the provided Echo
// instance. All routes are public; the delete endpoints are plain GETs that
// redirect home, matching the links the pages render.
func RegisterRoutes(e *echo.Echo, v *handler.VenueHandler, a *handler.ArtistHandler, s *handler.ShowHandler) {
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)

	// Venues
	e.GET("/venues", v.List)
	e.POST("/venues/search", v.Search)
	e.GET("/venues/create", v.NewForm)
	e.POST("/venues/create", v.Create)
	e.GET("/venues/:id", v.Detail)
	e.GET("/venues/:id/edit", v.EditForm)
	e.POST("/venues/:id/edit", v.Edit)
	e.GET("/delete_venue/:id", v.Delete)

	// Artists mirror the venue routes.
	e.GET("/artists", a.List)
	e.POST("/artists/search", a.Search)
	e.GET("/artists/create", a.NewForm)
	e.POST("/artists/create", a.Create)
	e.GET("/artists/:id", a.Detail)
	e.GET("/artists/:id/edit", a.EditForm)
	e.POST("/artists/:id/edit", a.Edit)
	e.GET("/delete_artist/:id", a.Delete)

	// Shows
	e.GET("/shows", s.List)
	e.GET("/shows/create", s.NewForm)
	e.POST("/shows/create", s.Create)
}
