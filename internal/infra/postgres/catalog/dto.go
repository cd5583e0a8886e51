package infra_postgres_catalog

import (
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

type OptionDB struct {
	Field    string `db:"field"`
	Label    string `db:"label"`
	Position int    `db:"position"`
}

// ToDomain groups rows by field. Rows are expected in position order;
// unknown fields are skipped.
func ToDomain(rows []OptionDB) model.Catalog {
	c := model.Catalog{
		Genres:    []string{},
		Actors:    []string{},
		Directors: []string{},
	}
	for _, r := range rows {
		switch model.Field(r.Field) {
		case model.FieldGenres:
			c.Genres = append(c.Genres, r.Label)
		case model.FieldActors:
			c.Actors = append(c.Actors, r.Label)
		case model.FieldDirectors:
			c.Directors = append(c.Directors, r.Label)
		}
	}
	return c
}

// FromDomain flattens the catalog into rows, positions starting at 1 per field.
func FromDomain(c model.Catalog) []OptionDB {
	rows := make([]OptionDB, 0, len(c.Genres)+len(c.Actors)+len(c.Directors))
	for _, f := range []model.Field{model.FieldGenres, model.FieldActors, model.FieldDirectors} {
		for i, label := range c.Options(f) {
			rows = append(rows, OptionDB{Field: string(f), Label: label, Position: i + 1})
		}
	}
	return rows
}
