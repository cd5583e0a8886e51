package usecase_form

import (
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

type Action interface {
	action()
}

// Search asks for movie candidates matching Query.
type Search struct {
	Query string
}

// Select replaces the whole selection of one field.
type Select struct {
	Field  model.Field
	Values []string
}

// Rate sets the rating of a selected movie. A nil Value clears it.
type Rate struct {
	Movie string
	Value *model.Rating
}

type Submit struct{}

// OptionsLoaded carries lookup results back into the store.
// Only the session produces it.
type OptionsLoaded struct {
	Generation uint64
	Options    []string
}

func (Search) action()        {}
func (Select) action()        {}
func (Rate) action()          {}
func (Submit) action()        {}
func (OptionsLoaded) action() {}
