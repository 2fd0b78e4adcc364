package domain

import "strings"

// ChartAccount is one entry of a company's chart of accounts.
type ChartAccount struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // asset, liability, equity, revenue, expense
}

// ChartOfAccounts is the list of accounts lines may reference.
type ChartOfAccounts []ChartAccount

// Find returns the account with the given code.
func (c ChartOfAccounts) Find(code string) (ChartAccount, bool) {
	for _, acc := range c {
		if acc.Code == code {
			return acc, true
		}
	}
	return ChartAccount{}, false
}

// Search returns accounts whose code or name contains text, case-insensitively.
// Empty text matches every account.
func (c ChartOfAccounts) Search(text string) ChartOfAccounts {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return append(ChartOfAccounts{}, c...)
	}
	matches := ChartOfAccounts{}
	for _, acc := range c {
		if strings.Contains(strings.ToLower(acc.Code), needle) || strings.Contains(strings.ToLower(acc.Name), needle) {
			matches = append(matches, acc)
		}
	}
	return matches
}
