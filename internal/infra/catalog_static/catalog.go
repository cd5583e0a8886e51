package catalog_static

import (
	"context"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

var (
	genres = []string{"Action", "Drama", "Horror", "Comedy", "Romance", "Fantasy"}
	actors = []string{
		"Tim Robbins", "Morgan Freeman", "Marlon Brando", "Al Pacino", "Christian Bale",
		"Heath Ledger", "John Travolta", "Uma Thurman", "Tom Hanks", "Robin Wright",
	}
	directors = []string{
		"Frank Darabont", "Francis Ford Coppola", "Christopher Nolan", "Quentin Tarantino", "Robert Zemeckis",
	}
)

// Repository serves the built-in option lists. Used when no database is configured.
type Repository struct{}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) Load(ctx context.Context) (model.Catalog, error) {
	return model.Catalog{
		Genres:    append([]string(nil), genres...),
		Actors:    append([]string(nil), actors...),
		Directors: append([]string(nil), directors...),
	}, nil
}
