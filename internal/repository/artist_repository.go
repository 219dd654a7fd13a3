// Package repository contains data access logic for the Artist aggregate.
// Artists follow the same lifecycle shape as venues: full-replace updates
// and cascading deletes of dependent shows.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Artist represents a performing act persisted in the database.
type Artist struct {
	ID                 uint64   // artists.id, auto-incremented primary key
	Name               string   // artists.name
	City               string   // artists.city
	State              string   // artists.state, two-letter code
	Phone              string   // artists.phone
	ImageLink          string   // artists.image_link
	FacebookLink       string   // artists.facebook_link
	Website            string   // artists.website
	SeekingVenue       bool     // artists.seeking_venue
	SeekingDescription string   // artists.seeking_description
	Genres             []string // artists.genres, delimited column in the DB
}

// ArtistUpdate enumerates exactly the mutable fields of an artist.
type ArtistUpdate struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	Genres             []string
}

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistColumns = `id, name, city, state, phone, image_link,
	facebook_link, website, seeking_venue, seeking_description, genres`

// Create inserts a new artist. On success the artist's ID field is populated
// with the auto-generated value.
func (r *ArtistRepo) Create(ctx context.Context, a *Artist) error {
	const q = `INSERT INTO artists
		(name, city, state, phone, image_link, facebook_link, website,
		 seeking_venue, seeking_description, genres)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink,
		a.Website, a.SeekingVenue, a.SeekingDescription, joinGenres(a.Genres))
	if err != nil {
		return asConstraintErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an artist by its ID. It returns ErrArtistNotFound if no
// row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the full mutable field set of an artist. It returns
// ErrArtistNotFound when the id does not exist; an update that changes no
// values still succeeds.
func (r *ArtistRepo) Update(ctx context.Context, id uint64, u ArtistUpdate) error {
	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, image_link = ?,
		    facebook_link = ?, website = ?, seeking_venue = ?,
		    seeking_description = ?, genres = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		u.Name, u.City, u.State, u.Phone, u.ImageLink, u.FacebookLink,
		u.Website, u.SeekingVenue, u.SeekingDescription, joinGenres(u.Genres), id)
	if err != nil {
		return asConstraintErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM artists WHERE id = ?)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrArtistNotFound
		}
	}
	return nil
}

// Delete removes an artist and its shows inside a transaction. Deleting an
// absent id is a successful no-op. The error result is named so the deferred
// commit can report its failure.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}

func scanArtist(s rowScanner) (*Artist, error) {
	var a Artist
	var genres string
	if err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue,
		&a.SeekingDescription, &genres); err != nil {
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}
