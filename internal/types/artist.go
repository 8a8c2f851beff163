// Package types provides type definitions for structured data used throughout the autonomy pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ArtistPersona is a fixed synthetic artist profile driving prompt generation.
// Personas are defined at configuration time and never mutated by a run.
type ArtistPersona struct {
	ID            string   `json:"id" validate:"required"`
	Voice         string   `json:"voice" validate:"required"`
	PrimaryMedium string   `json:"primaryMedium" validate:"required"`
	Constraints   []string `json:"constraints" validate:"required,min=1,dive,required"`

	// Gallery is the public record-store identity for this persona,
	// used only by the sync and reset commands.
	Gallery GalleryProfile `json:"gallery"`
}

// GalleryProfile is the public-facing artist identity in the gallery record store.
type GalleryProfile struct {
	Name        string   `json:"name" validate:"required"`
	Bio         string   `json:"bio"`
	Personality string   `json:"personality"`
	Style       string   `json:"style"`
	Mediums     []string `json:"mediums"`
}
