package model

type Catalog struct {
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
}

// Options returns the fixed option list of a field, nil for movies.
func (c Catalog) Options(f Field) []string {
	switch f {
	case FieldGenres:
		return c.Genres
	case FieldActors:
		return c.Actors
	case FieldDirectors:
		return c.Directors
	}
	return nil
}
