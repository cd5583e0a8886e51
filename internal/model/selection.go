package model

import "strings"

type Field string

const (
	FieldMovies    Field = "movies"
	FieldGenres    Field = "genres"
	FieldActors    Field = "actors"
	FieldDirectors Field = "directors"
)

func (f Field) Valid() bool {
	switch f {
	case FieldMovies, FieldGenres, FieldActors, FieldDirectors:
		return true
	}
	return false
}

// Fixed reports whether the field draws its options from the catalog.
func (f Field) Fixed() bool {
	return f == FieldGenres || f == FieldActors || f == FieldDirectors
}

// Selection is an ordered set of labels, kept in selection order.
type Selection []string

// NewSelection drops blank labels and repeats, keeping the first occurrence.
func NewSelection(labels ...string) Selection {
	s := make(Selection, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		s = append(s, l)
	}
	return s
}

func (s Selection) Empty() bool {
	return len(s) == 0
}

func (s Selection) Contains(label string) bool {
	for _, l := range s {
		if l == label {
			return true
		}
	}
	return false
}

// Only keeps the labels also present in allowed.
func (s Selection) Only(allowed []string) Selection {
	out := make(Selection, 0, len(s))
	for _, l := range s {
		if Selection(allowed).Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// Join renders the selection for display, "None" when empty.
func (s Selection) Join() string {
	if s.Empty() {
		return NoneToken
	}
	return strings.Join(s, ", ")
}
