package usecase_rows

import (
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

// Generate builds one rating input per selected movie, in selection order.
// Range is enforced by the input itself, not here.
func Generate(selected model.Selection) []model.RatingRow {
	if selected.Empty() {
		return []model.RatingRow{}
	}

	rows := make([]model.RatingRow, 0, len(selected))
	for _, movie := range selected {
		rows = append(rows, model.RatingRow{
			Movie: movie,
			Label: "Rating for " + movie + ":",
			Min:   model.MinRating,
			Max:   model.MaxRating,
			Step:  model.RatingStep,
		})
	}
	return rows
}

// Fill copies known ratings into the rows' values.
func Fill(rows []model.RatingRow, ratings model.Ratings) []model.RatingRow {
	out := make([]model.RatingRow, len(rows))
	for i, row := range rows {
		row.Value = nil
		if r, ok := ratings[row.Movie]; ok {
			row.Value = &r
		}
		out[i] = row
	}
	return out
}
