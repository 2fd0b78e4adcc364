package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
)

const periodFormat = "2006-01"

// Company identifies the books entries and suggestions belong to.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Period is an accounting month in YYYY-MM form.
type Period string

// ParsePeriod validates a YYYY-MM period.
func ParsePeriod(s string) (Period, error) {
	if _, err := time.Parse(periodFormat, s); err != nil {
		return "", fmt.Errorf("%w: period %q must be formatted YYYY-MM", apperrors.ErrValidation, s)
	}
	return Period(s), nil
}

// Scope is the company/period filter that selects which suggestions and entries are loaded.
type Scope struct {
	CompanyID string `json:"companyId"`
	Period    Period `json:"period"`
}

// Key returns a string usable as a map key for the scope.
func (s Scope) Key() string {
	return s.CompanyID + "|" + string(s.Period)
}
