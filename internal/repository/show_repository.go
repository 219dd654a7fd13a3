// Package repository contains data access logic for Show domain operations.
// A Show links one venue to one artist at a start time. Shows are created by
// a booking action; they are removed only when a parent venue or artist is
// deleted. List queries join both parents so read paths get counterpart
// names and images in a single round trip.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Show represents a scheduled performance persisted in the database.
// StartTime is a DATETIME scanned directly into time.Time by the driver
// (parseTime=true); no string timestamps cross this boundary.
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time
}

// ShowDetail is a show row joined with both parents. Read paths project it
// into upcoming/past entries or the flat shows listing.
type ShowDetail struct {
	ShowID          uint64
	VenueID         uint64
	VenueName       string
	VenueImageLink  string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the show
// struct. A venue_id or artist_id that references no existing row surfaces
// as ErrConstraint.
func (r *ShowRepo) Create(ctx context.Context, s *Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return asConstraintErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a show by its ID. It returns ErrShowNotFound if there
// is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = ?`
	var s Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update rewrites a show's foreign keys and start time. No route invokes it
// today; it exists so the Show lifecycle matches the other aggregates.
func (r *ShowRepo) Update(ctx context.Context, s *Show) error {
	const q = `UPDATE shows SET venue_id = ?, artist_id = ?, start_time = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime, s.ID)
	if err != nil {
		return asConstraintErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM shows WHERE id = ?)`, s.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrShowNotFound
		}
	}
	return nil
}

// detailColumns is the join projection shared by the list queries.
const detailColumns = `s.id, s.venue_id, v.name, v.image_link,
	s.artist_id, a.name, a.image_link, s.start_time`

const detailJoins = ` FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ListByVenue returns every show booked at a venue, joined with counterpart
// info, ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]ShowDetail, error) {
	const q = `SELECT ` + detailColumns + detailJoins + `
		WHERE s.venue_id = ? ORDER BY s.start_time, s.id`
	return r.queryDetails(ctx, q, venueID)
}

// ListByArtist returns every show an artist is booked for, joined with
// counterpart info, ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]ShowDetail, error) {
	const q = `SELECT ` + detailColumns + detailJoins + `
		WHERE s.artist_id = ? ORDER BY s.start_time, s.id`
	return r.queryDetails(ctx, q, artistID)
}

// ListAll returns every show with venue and artist info for the flat
// /shows listing.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowDetail, error) {
	const q = `SELECT ` + detailColumns + detailJoins + ` ORDER BY s.start_time, s.id`
	return r.queryDetails(ctx, q)
}

func (r *ShowRepo) queryDetails(ctx context.Context, q string, args ...any) ([]ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShowDetail
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(&d.ShowID, &d.VenueID, &d.VenueName, &d.VenueImageLink,
			&d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
