package usecase_form

import (
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

// Outcome is what the output region shows after a submit:
// either the summary or a validation message.
type Outcome struct {
	Summary *model.Summary `json:"summary,omitempty"`
	Lines   []string       `json:"lines,omitempty"`
	Message string         `json:"message,omitempty"`
}

type State struct {
	Status       model.SubmissionStatus `json:"status"`
	Query        string                 `json:"query"`
	Generation   uint64                 `json:"generation"`
	MovieOptions model.Selection        `json:"movie_options"`
	Movies       model.Selection        `json:"movies"`
	Genres       model.Selection        `json:"genres"`
	Actors       model.Selection        `json:"actors"`
	Directors    model.Selection        `json:"directors"`
	Rows         []model.RatingRow      `json:"rows"`
	Ratings      model.Ratings          `json:"ratings"`
	Outcome      *Outcome               `json:"outcome,omitempty"`
	Catalog      model.Catalog          `json:"catalog"`
}

func NewState(catalog model.Catalog) State {
	return State{
		Status:       model.NotSubmitted,
		MovieOptions: model.NewSelection(),
		Movies:       model.NewSelection(),
		Genres:       model.NewSelection(),
		Actors:       model.NewSelection(),
		Directors:    model.NewSelection(),
		Rows:         []model.RatingRow{},
		Ratings:      model.Ratings{},
		Catalog:      catalog,
	}
}
