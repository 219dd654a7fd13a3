package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestFlashRoundTrip(t *testing.T) {
	c, rec := newTestContext(t)
	setFlash(c, "Venue The Musical Hop was successfully listed!")

	res := rec.Result()
	require.Len(t, res.Cookies(), 1)
	stored := res.Cookies()[0]
	assert.Equal(t, flashCookie, stored.Name)

	// A follow-up request carrying the cookie yields the message once and
	// expires the cookie.
	c2, rec2 := newTestContext(t, &http.Cookie{Name: stored.Name, Value: stored.Value})
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", takeFlash(c2))

	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestTakeFlashWithoutCookie(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Empty(t, takeFlash(c))
}

func TestParamID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("42")
	id, ok := paramID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	for _, bad := range []string{"abc", "0", "-3", ""} {
		c.SetParamValues(bad)
		_, ok := paramID(c)
		assert.False(t, ok, "id %q should be rejected", bad)
	}
}

func TestGenreSelection(t *testing.T) {
	sel := genreSelection([]string{"Jazz", "Soul"})
	assert.True(t, sel["Jazz"])
	assert.True(t, sel["Soul"])
	assert.False(t, sel["Punk"])
}
