package handler

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showbill/internal/render"
	"showbill/internal/repository"
)

// fkFailDriver rejects every write with the MySQL error number for a missing
// referenced row, so repositories report ErrConstraint without a server.
type fkFailDriver struct{}

func (fkFailDriver) Open(string) (driver.Conn, error) { return fkFailConn{}, nil }

type fkFailConn struct{}

func (fkFailConn) Prepare(string) (driver.Stmt, error) { return fkFailStmt{}, nil }
func (fkFailConn) Close() error                        { return nil }
func (fkFailConn) Begin() (driver.Tx, error)           { return nil, errors.New("tx not supported") }

type fkFailStmt struct{}

func (fkFailStmt) Close() error  { return nil }
func (fkFailStmt) NumInput() int { return -1 }
func (fkFailStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, &mysql.MySQLError{Number: 1452, Message: "no referenced row"}
}
func (fkFailStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("query not supported")
}

func init() { sql.Register("fkfail", fkFailDriver{}) }

func openFKFailDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("fkfail", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func postForm(t *testing.T, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Constraint violations are user-facing outcomes, not server faults, so the
// create handlers flash the failure without emitting an error log line.
func TestVenueCreateConstraintFlashesWithoutErrorLog(t *testing.T) {
	var logBuf bytes.Buffer
	h := &VenueHandler{
		Venues: repository.NewVenueRepo(openFKFailDB(t)),
		Log:    zerolog.New(&logBuf),
	}

	c, rec := postForm(t, url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom Street"},
		"phone":         {"123-123-1234"},
		"image_link":    {"https://example.com/hop.jpg"},
		"facebook_link": {"https://facebook.com/themusicalhop"},
		"website":       {"https://themusicalhop.com"},
		"genres":        {"Jazz", "Folk"},
	})

	require.NoError(t, h.Create(c))
	assert.Contains(t, rec.Body.String(), "could not be listed")
	assert.Empty(t, logBuf.String())
}

func TestArtistCreateConstraintFlashesWithoutErrorLog(t *testing.T) {
	var logBuf bytes.Buffer
	h := &ArtistHandler{
		Artists: repository.NewArtistRepo(openFKFailDB(t)),
		Log:     zerolog.New(&logBuf),
	}

	c, rec := postForm(t, url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"image_link":    {"https://example.com/petals.jpg"},
		"facebook_link": {"https://facebook.com/gunsnpetals"},
		"website":       {"https://gunsnpetalsband.com"},
		"genres":        {"Rock n Roll"},
	})

	require.NoError(t, h.Create(c))
	assert.Contains(t, rec.Body.String(), "could not be listed")
	assert.Empty(t, logBuf.String())
}
