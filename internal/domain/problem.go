package domain

// Problem holds the metadata fetched for a single problem.
type Problem struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Slug       string           `json:"slug"`
	Difficulty string           `json:"difficulty"`
	Tags       []string         `json:"tags,omitempty"`
	Similar    []SimilarProblem `json:"similar,omitempty"`
}

// SimilarProblem is an entry of a problem's related-problem list.
type SimilarProblem struct {
	Title      string `json:"title"`
	Slug       string `json:"titleSlug"`
	Difficulty string `json:"difficulty"`
}

// DisplayName is the entry title shown in the database, e.g. "1. Two Sum".
func (p *Problem) DisplayName() string {
	return p.ID + ". " + p.Title
}
