package domain

import "time"

// DraftSession is the editor state owned by one user: the entry being edited
// plus the per-line account search text.
type DraftSession struct {
	OwnerID       string         `json:"ownerID"`
	Entry         *JournalEntry  `json:"entry"`
	AccountSearch map[int]string `json:"accountSearch,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy of the session.
func (s *DraftSession) Clone() *DraftSession {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Entry = s.Entry.Clone()
	if s.AccountSearch != nil {
		cp.AccountSearch = make(map[int]string, len(s.AccountSearch))
		for k, v := range s.AccountSearch {
			cp.AccountSearch[k] = v
		}
	}
	return &cp
}

// Balance reports the balance of the session's entry, or EmptyBalance when there is none.
func (s *DraftSession) Balance() Balance {
	if s == nil || s.Entry == nil {
		return EmptyBalance()
	}
	return CalculateBalance(s.Entry.Lines)
}

// ShiftSearchAfterRemoval drops the search text of the removed line and
// moves the text of later lines down one index.
func (s *DraftSession) ShiftSearchAfterRemoval(removed int) {
	if len(s.AccountSearch) == 0 {
		return
	}
	shifted := make(map[int]string, len(s.AccountSearch))
	for idx, text := range s.AccountSearch {
		switch {
		case idx < removed:
			shifted[idx] = text
		case idx > removed:
			shifted[idx-1] = text
		}
	}
	s.AccountSearch = shifted
}
