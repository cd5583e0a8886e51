package model

import (
	"math"
	"strconv"
)

const (
	MinRating  Rating = 1
	MaxRating  Rating = 5
	RatingStep Rating = 0.1
)

type Rating float64

// Valid checks range and step.
func (r Rating) Valid() bool {
	if math.IsNaN(float64(r)) || r < MinRating || r > MaxRating {
		return false
	}
	steps := float64(r / RatingStep)
	return math.Abs(steps-math.Round(steps)) < 1e-6
}

const stepsPerUnit = 10

// Snap rounds to the nearest tenth.
func (r Rating) Snap() Rating {
	return Rating(math.Round(float64(r)*stepsPerUnit) / stepsPerUnit)
}

func (r Rating) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// Ratings are keyed by movie label.
type Ratings map[string]Rating

// For returns the ratings of the given movies in their order, skipping unrated ones.
func (rs Ratings) For(movies Selection) []Rating {
	out := make([]Rating, 0, len(movies))
	for _, m := range movies {
		if r, ok := rs[m]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Prune returns a copy restricted to the given movies.
func (rs Ratings) Prune(movies Selection) Ratings {
	out := make(Ratings, len(movies))
	for _, m := range movies {
		if r, ok := rs[m]; ok {
			out[m] = r
		}
	}
	return out
}

type RatingRow struct {
	Movie string  `json:"movie"`
	Label string  `json:"label"`
	Min   Rating  `json:"min"`
	Max   Rating  `json:"max"`
	Step  Rating  `json:"step"`
	Value *Rating `json:"value,omitempty"`
}
