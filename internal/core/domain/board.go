package domain

import "time"

// Board is the set of lists shown for one scope: suggestions in draft,
// approved entries ready for export, and posted entries.
type Board struct {
	Scope       Scope        `json:"scope"`
	Suggestions []Suggestion `json:"suggestions"`
	Ready       []Suggestion `json:"ready"`
	Posted      []Suggestion `json:"posted"`
	Stale       bool         `json:"stale"` // Set when the last reconciliation reload failed
	LoadedAt    time.Time    `json:"loadedAt"`
}

// Clone returns a copy whose lists can be modified independently of b.
func (b *Board) Clone() *Board {
	cp := *b
	cp.Suggestions = append([]Suggestion{}, b.Suggestions...)
	cp.Ready = append([]Suggestion{}, b.Ready...)
	cp.Posted = append([]Suggestion{}, b.Posted...)
	return &cp
}

// BoardList names one of the lists on a board.
type BoardList string

const (
	ListSuggestions BoardList = "suggestions"
	ListReady       BoardList = "ready"
	ListPosted      BoardList = "posted"
)

// EntrySets is the ready/posted pair the backend returns for a scope.
type EntrySets struct {
	Ready  []Suggestion `json:"ready"`
	Posted []Suggestion `json:"posted"`
}
