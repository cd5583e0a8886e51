package model

import (
	"fmt"
	"strings"
)

const NoneToken = "None"

type SubmissionStatus int

const (
	NotSubmitted SubmissionStatus = iota
	Submitted
)

func (s SubmissionStatus) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "not_submitted"
}

func (s SubmissionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SubmissionStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "submitted":
		*s = Submitted
	case "not_submitted":
		*s = NotSubmitted
	default:
		return fmt.Errorf("unknown submission status %q", text)
	}
	return nil
}

// Summary is built on submit for display only.
type Summary struct {
	Movies    Selection `json:"movies"`
	Ratings   []Rating  `json:"ratings"`
	Genres    Selection `json:"genres"`
	Actors    Selection `json:"actors"`
	Directors Selection `json:"directors"`
}

func (s Summary) Lines() []string {
	ratings := make([]string, len(s.Ratings))
	for i, r := range s.Ratings {
		ratings[i] = r.String()
	}

	return []string{
		"You have selected:",
		"Movies: " + strings.Join(s.Movies, ", "),
		"Ratings: " + strings.Join(ratings, ", "),
		"Genres: " + s.Genres.Join(),
		"Actors: " + s.Actors.Join(),
		"Directors: " + s.Directors.Join(),
	}
}

func (s Summary) Text() string {
	return strings.Join(s.Lines(), "\n")
}
