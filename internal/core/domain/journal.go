package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	StatusDraft  EntryStatus = "draft"
	StatusPosted EntryStatus = "posted"
)

// EntryAuthor records who produced the first version of an entry.
type EntryAuthor string

const (
	AuthorAI   EntryAuthor = "AI"
	AuthorUser EntryAuthor = "User"
)

const entryDateFormat = "2006-01-02"

// Messages shown to the user when an entry cannot be posted. Checked in this order.
var (
	ErrEntryNotBalanced      = apperrors.NewValidationError("Entry is not balanced! Debits must equal Credits.")
	ErrEntryDescriptionEmpty = apperrors.NewValidationError("Please add a description for this journal entry.")
	ErrEntryAccountMissing   = apperrors.NewValidationError("All lines must have an account selected.")
)

// JournalEntry is a set of ledger lines plus header data.
// TotalDebit, TotalCredit and IsBalanced are cached copies of the balance;
// Recalculate refreshes them from Lines.
type JournalEntry struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"` // YYYY-MM-DD
	Description    string          `json:"description"`
	Reference      string          `json:"reference,omitempty"`
	Lines          []LedgerLine    `json:"lines"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	IsBalanced     bool            `json:"isBalanced"`
	Status         EntryStatus     `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      EntryAuthor     `json:"createdBy"`
	IdempotencyKey string          `json:"idempotencyKey,omitempty"`
}

// DraftEntryID returns the client-side id of a draft created at now.
func DraftEntryID(now time.Time) string {
	return fmt.Sprintf("je_draft_%d", now.UnixMilli())
}

// PostedEntryID returns the id of an entry posted at now.
func PostedEntryID(now time.Time) string {
	return fmt.Sprintf("je_%d", now.UnixMilli())
}

// NewDraftEntry creates an empty draft dated today.
func NewDraftEntry(now time.Time, author EntryAuthor) *JournalEntry {
	entry := &JournalEntry{
		ID:        DraftEntryID(now),
		Date:      now.Format(entryDateFormat),
		Lines:     []LedgerLine{},
		Status:    StatusDraft,
		CreatedAt: now,
		CreatedBy: author,
	}
	entry.Recalculate()
	return entry
}

// Recalculate recomputes the cached totals from the lines and returns the balance.
func (e *JournalEntry) Recalculate() Balance {
	balance := CalculateBalance(e.Lines)
	e.TotalDebit = balance.Debit
	e.TotalCredit = balance.Credit
	e.IsBalanced = balance.Balanced
	return balance
}

// Clone returns a copy that shares no slices with e.
func (e *JournalEntry) Clone() *JournalEntry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Lines = make([]LedgerLine, len(e.Lines))
	copy(cp.Lines, e.Lines)
	return &cp
}

// HasLine reports whether index addresses an existing line.
func (e *JournalEntry) HasLine(index int) bool {
	return index >= 0 && index < len(e.Lines)
}

// ValidateForPosting checks the posting preconditions in order and
// returns the first one that fails.
func (e *JournalEntry) ValidateForPosting() error {
	if !CalculateBalance(e.Lines).Balanced {
		return ErrEntryNotBalanced
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEntryDescriptionEmpty
	}
	for _, line := range e.Lines {
		if !line.HasAccount() {
			return ErrEntryAccountMissing
		}
	}
	return nil
}

// ToPosted builds the record sent to the backend when the entry is posted.
func (e *JournalEntry) ToPosted(now time.Time) JournalEntry {
	posted := *e.Clone()
	posted.ID = PostedEntryID(now)
	posted.Status = StatusPosted
	posted.CreatedAt = now
	posted.Recalculate()
	return posted
}
