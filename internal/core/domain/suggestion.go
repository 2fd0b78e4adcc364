package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SuggestionStatus is the lifecycle state of a suggested entry.
type SuggestionStatus string

const (
	SuggestionSuggested SuggestionStatus = "suggested" // Draft tab
	SuggestionApproved  SuggestionStatus = "approved"  // Ready-to-export tab
	SuggestionPosted    SuggestionStatus = "posted"    // Posted tab, read-only
)

// SuggestedJE is the single journal-entry proposal attached to a suggestion.
type SuggestedJE struct {
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	Memo          string          `json:"memo,omitempty"`
}

// Suggestion is a proposed journal entry derived from one source item.
// The proposal is replaced on every save; older versions are not kept.
type Suggestion struct {
	ID          string
	Status      SuggestionStatus
	Source      SourceItem
	SuggestedJE *SuggestedJE
}

// HasProposal reports whether the suggestion carries a journal-entry proposal.
func (s Suggestion) HasProposal() bool {
	return s.SuggestedJE != nil
}

// WithProposal returns a copy of s carrying je.
func (s Suggestion) WithProposal(je SuggestedJE) Suggestion {
	s.SuggestedJE = &je
	return s
}

type suggestionWire struct {
	ID         string           `json:"id"`
	Status     SuggestionStatus `json:"status,omitempty"`
	SourceType SourceType       `json:"sourceType"`
	SourceItem json.RawMessage  `json:"sourceItem"`
}

type proposalWire struct {
	SuggestedJE *SuggestedJE `json:"suggested_je,omitempty"`
}

// UnmarshalJSON decodes the backend shape, where the proposal lives inside sourceItem.
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var wire suggestionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	source, err := decodeSourceItem(wire.SourceType, wire.SourceItem)
	if err != nil {
		return fmt.Errorf("suggestion %s: %w", wire.ID, err)
	}
	var proposal proposalWire
	if len(wire.SourceItem) > 0 {
		if err := json.Unmarshal(wire.SourceItem, &proposal); err != nil {
			return fmt.Errorf("suggestion %s: decoding suggested_je: %w", wire.ID, err)
		}
	}

	s.ID = wire.ID
	s.Status = wire.Status
	if s.Status == "" {
		s.Status = SuggestionSuggested
	}
	s.Source = source
	s.SuggestedJE = proposal.SuggestedJE
	return nil
}

// MarshalJSON encodes the suggestion in the backend shape.
func (s Suggestion) MarshalJSON() ([]byte, error) {
	if s.Source == nil {
		return nil, fmt.Errorf("suggestion %s has no source item", s.ID)
	}
	item, err := json.Marshal(s.Source)
	if err != nil {
		return nil, err
	}
	if s.SuggestedJE != nil {
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, err
		}
		je, err := json.Marshal(s.SuggestedJE)
		if err != nil {
			return nil, err
		}
		fields["suggested_je"] = je
		if item, err = json.Marshal(fields); err != nil {
			return nil, err
		}
	}
	return json.Marshal(suggestionWire{
		ID:         s.ID,
		Status:     s.Status,
		SourceType: s.Source.Type(),
		SourceItem: item,
	})
}

// FindSuggestion returns the index of the suggestion with the given id, or -1.
func FindSuggestion(list []Suggestion, id string) int {
	for i, s := range list {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// RemoveSuggestion returns a new list without the suggestion with the given id.
func RemoveSuggestion(list []Suggestion, id string) []Suggestion {
	out := make([]Suggestion, 0, len(list))
	for _, s := range list {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
