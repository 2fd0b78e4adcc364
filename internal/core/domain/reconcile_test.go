package domain_test

import (
	"testing"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func sug(id string) domain.Suggestion {
	return domain.Suggestion{ID: id, Status: domain.SuggestionSuggested, Source: domain.BankTransaction{ID: "t-" + id}}
}

func ids(list []domain.Suggestion) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestReconcile(t *testing.T) {
	local := []domain.Suggestion{sug("a"), sug("c"), sug("optimistic")}
	remote := []domain.Suggestion{sug("a"), sug("b"), sug("c"), sug("b")}

	got := domain.Reconcile(local, remote)

	assert.Equal(t, []string{"a", "b", "c"}, ids(got.List))
	assert.Equal(t, []string{"b"}, got.Added)
	assert.Equal(t, []string{"optimistic"}, got.Removed)
}

func TestReconcile_EmptyRemoteClearsLocal(t *testing.T) {
	got := domain.Reconcile([]domain.Suggestion{sug("a")}, nil)
	assert.Empty(t, got.List)
	assert.NotNil(t, got.List)
	assert.Equal(t, []string{"a"}, got.Removed)
}

func TestChartOfAccounts_Search(t *testing.T) {
	coa := domain.ChartOfAccounts{{Code: "1000", Name: "Cash"}, {Code: "6100", Name: "Hosting"}, {Code: "6200", Name: "Rent"}}

	assert.Len(t, coa.Search(""), 3)
	assert.Equal(t, "6100", coa.Search("host")[0].Code)
	assert.Len(t, coa.Search("6"), 2)

	acc, ok := coa.Find("6200")
	assert.True(t, ok)
	assert.Equal(t, "Rent", acc.Name)
	_, ok = coa.Find("9999")
	assert.False(t, ok)
}
