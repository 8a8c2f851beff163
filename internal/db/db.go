// Package db provides PostgreSQL access to the gallery record store used
// by the sync and reset commands. The pipeline itself never touches the
// database; only finished run artifacts are pushed here.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jeffschram/iamfranz/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the record store
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertArtist creates or updates a gallery artist by stable name and
// returns its ID. The full persona is stored alongside the profile columns
// so the gallery can render it without a roster copy.
func (s *Store) UpsertArtist(ctx context.Context, persona types.ArtistPersona) (uuid.UUID, error) {
	personaJSON, err := json.Marshal(persona)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal persona %s: %w", persona.ID, err)
	}

	g := persona.Gallery
	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO artists (name, bio, personality, style, mediums, persona)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO UPDATE
		 SET bio = $2, personality = $3, style = $4, mediums = $5, persona = $6, updated_at = NOW()
		 RETURNING id`,
		g.Name, g.Bio, g.Personality, g.Style, g.Mediums, personaJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert artist %s: %w", g.Name, err)
	}
	return id, nil
}

// UploadImage stores raw image bytes and returns the image row ID.
func (s *Store) UploadImage(ctx context.Context, contentType string, data []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO images (content_type, data) VALUES ($1, $2) RETURNING id`,
		contentType, data,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return id, nil
}

// ArtworkExists reports whether an artwork with the given title is already
// in the store. Titles are deterministic per artist per date, so this makes
// re-syncing a run idempotent.
func (s *Store) ArtworkExists(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM artworks WHERE title = $1)`,
		title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check artwork %q: %w", title, err)
	}
	return exists, nil
}

// Artwork is one gallery artwork row to create.
type Artwork struct {
	Title       string
	Description string
	ArtistID    uuid.UUID
	ImageID     uuid.UUID
	Year        int
	Medium      string
	Dimensions  string
	IsAvailable bool
	Featured    bool
}

// CreateArtwork inserts one artwork row and returns its ID.
func (s *Store) CreateArtwork(ctx context.Context, a Artwork) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO artworks (title, description, artist_id, image_id, year, medium, dimensions, is_available, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		a.Title, a.Description, a.ArtistID, a.ImageID, a.Year, a.Medium, a.Dimensions, a.IsAvailable, a.Featured,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create artwork %q: %w", a.Title, err)
	}
	return id, nil
}

// DailyUpdate is the per-(artist, date) activity row pushed by sync.
type DailyUpdate struct {
	ArtistID    uuid.UUID
	Date        string
	Summary     string
	Interests   []string
	Inspiration []string
	Score       int
}

// UpsertDailyUpdate inserts or replaces the artist's update for one date.
func (s *Store) UpsertDailyUpdate(ctx context.Context, u DailyUpdate) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO artist_updates (artist_id, date, summary, interests, inspiration, score)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (artist_id, date) DO UPDATE
		 SET summary = $3, interests = $4, inspiration = $5, score = $6`,
		u.ArtistID, u.Date, u.Summary, u.Interests, u.Inspiration, u.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily update for %s: %w", u.Date, err)
	}
	return nil
}

// CountArtists returns the number of artist rows.
func (s *Store) CountArtists(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artists`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return n, nil
}

// CountArtworks returns the number of artwork rows.
func (s *Store) CountArtworks(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artworks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return n, nil
}

// DeleteAllArtworks removes every artwork row.
func (s *Store) DeleteAllArtworks(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM artworks`); err != nil {
		return fmt.Errorf("failed to delete artworks: %w", err)
	}
	return nil
}

// DeleteAllArtists removes every artist row. Artworks must be deleted first
// unless the schema cascades.
func (s *Store) DeleteAllArtists(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM artists`); err != nil {
		return fmt.Errorf("failed to delete artists: %w", err)
	}
	return nil
}
