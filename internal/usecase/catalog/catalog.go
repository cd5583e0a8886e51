package usecase_catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

var (
	ErrFailedToLoadCatalog = errors.New("failed to load catalog")
	ErrEmptyCatalog        = errors.New("catalog has no options")
)

//go:generate mockery --name=Repository --output=./mocks/catalog/repository --filename=repository.go
type Repository interface {
	Load(ctx context.Context) (model.Catalog, error)
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{
		repository: repository,
	}
}

// Load reads the fixed option lists. Labels are deduplicated per field.
func (u *Usecase) Load(ctx context.Context) (model.Catalog, error) {
	c, err := u.repository.Load(ctx)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("%w: %w", ErrFailedToLoadCatalog, err)
	}

	c = model.Catalog{
		Genres:    model.NewSelection(c.Genres...),
		Actors:    model.NewSelection(c.Actors...),
		Directors: model.NewSelection(c.Directors...),
	}
	if len(c.Genres)+len(c.Actors)+len(c.Directors) == 0 {
		return model.Catalog{}, ErrEmptyCatalog
	}

	return c, nil
}
