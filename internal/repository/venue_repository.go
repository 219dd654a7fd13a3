// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Venue model and repository methods for CRUD and lookup
// operations. A Venue is an independent aggregate root; shows reference it by
// foreign key and are removed together with it.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
)

// Venue represents a music venue persisted in the database. Genres is a list
// on the model; it is stored as a single delimited column (see genres.go).
type Venue struct {
	ID                 uint64   // venues.id, auto-incremented primary key
	Name               string   // venues.name
	City               string   // venues.city
	State              string   // venues.state, two-letter code
	Address            string   // venues.address
	Phone              string   // venues.phone
	ImageLink          string   // venues.image_link
	FacebookLink       string   // venues.facebook_link
	Website            string   // venues.website
	SeekingTalent      bool     // venues.seeking_talent
	SeekingDescription string   // venues.seeking_description
	Genres             []string // venues.genres, delimited column in the DB
}

// VenueUpdate enumerates exactly the mutable fields of a venue. Edit forms
// submit the full field set, so an update is a full replace of these values.
type VenueUpdate struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	Genres             []string
}

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo encapsulates all database queries related to venues. It depends
// on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup. There is no initialization logic beyond assigning the field.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// venueColumns is the column list shared by every venue SELECT.
const venueColumns = `id, name, city, state, address, phone, image_link,
	facebook_link, website, seeking_talent, seeking_description, genres`

// Create inserts a new venue into the database. On success the venue's ID
// field is populated with the auto-generated value. Constraint failures are
// reported as ErrConstraint.
func (r *VenueRepo) Create(ctx context.Context, v *Venue) error {
	const q = `INSERT INTO venues
		(name, city, state, address, phone, image_link, facebook_link,
		 website, seeking_talent, seeking_description, genres)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
		joinGenres(v.Genres))
	if err != nil {
		return asConstraintErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID. It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	return scanVenueRow(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every venue ordered by (city, state, id). The ordering
// keeps the city/state grouping view stable between requests.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY city, state, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the full mutable field set of a venue. It returns
// ErrVenueNotFound when the id does not exist. Submitting values identical
// to the stored row is treated as success; MySQL reports zero affected rows
// in that case, so existence is re-checked before deciding.
func (r *VenueRepo) Update(ctx context.Context, id uint64, u VenueUpdate) error {
	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?,
		    image_link = ?, facebook_link = ?, website = ?,
		    seeking_talent = ?, seeking_description = ?, genres = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		u.Name, u.City, u.State, u.Address, u.Phone, u.ImageLink,
		u.FacebookLink, u.Website, u.SeekingTalent, u.SeekingDescription,
		joinGenres(u.Genres), id)
	if err != nil {
		return asConstraintErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM venues WHERE id = ?)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrVenueNotFound
		}
	}
	return nil
}

// Delete removes a venue and its shows inside a transaction. Deleting an
// absent id is a successful no-op so the operation is idempotent. The error
// result is named so the deferred commit can report its failure.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	// Shows reference the venue; remove them first so the FK holds.
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows so venue scanning is shared.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(s rowScanner) (*Venue, error) {
	var v Venue
	var genres string
	if err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent,
		&v.SeekingDescription, &genres); err != nil {
		return nil, err
	}
	v.Genres = splitGenres(genres)
	return &v, nil
}

func scanVenueRow(row *sql.Row) (*Venue, error) {
	v, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}
