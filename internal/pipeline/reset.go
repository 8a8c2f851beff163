package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeffschram/iamfranz/internal/db"
	"github.com/jeffschram/iamfranz/internal/roster"
)

// ResetStore wipes the gallery record store and reseeds the roster's
// gallery profiles. Artworks go first so artist rows are free to delete
// without cascade support.
func ResetStore(ctx context.Context, databaseURL string) error {
	personas := roster.Personas()
	if err := roster.Validate(personas); err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteAllArtworks(ctx); err != nil {
		return err
	}
	if err := store.DeleteAllArtists(ctx); err != nil {
		return err
	}

	names := make([]string, 0, len(personas))
	for _, persona := range personas {
		if _, err := store.UpsertArtist(ctx, persona); err != nil {
			return err
		}
		names = append(names, persona.Gallery.Name)
	}

	artists, err := store.CountArtists(ctx)
	if err != nil {
		return err
	}
	artworks, err := store.CountArtworks(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Reset complete. artists=%d artworks=%d\n", artists, artworks)
	fmt.Printf("Artists: %s\n", strings.Join(names, ", "))
	return nil
}
