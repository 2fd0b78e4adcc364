package local

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readyEntries() []domain.Suggestion {
	return []domain.Suggestion{
		domain.Suggestion{
			ID:     "s1",
			Status: domain.SuggestionApproved,
			Source: domain.BankTransaction{ID: "t1", Date: "2024-03-05", Description: "AWS", Amount: decimal.RequireFromString("-120.50")},
		}.WithProposal(domain.SuggestedJE{DebitAccount: "6100", CreditAccount: "1000", Amount: decimal.RequireFromString("120.50"), Memo: "Hosting"}),
		{
			ID:     "s2",
			Status: domain.SuggestionApproved,
			Source: domain.VendorBill{ID: "b1", VendorName: "Acme", InvoiceNumber: "7", Date: "2024-03-09", Amount: decimal.NewFromInt(900)},
		},
	}
}

func render(t *testing.T, format domain.ExportFormat) string {
	t.Helper()
	data, err := NewRenderer().Render(gateway.ExportMeta{CompanyName: "Acme GmbH", Period: "2024-03", Format: format, Set: domain.ExportReady}, readyEntries())
	require.NoError(t, err)
	return string(data)
}

func TestRender_QuickBooksCSV(t *testing.T) {
	out := render(t, domain.FormatQBCSV)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Journal No,Journal Date,Account,Debits,Credits,Description", lines[0])
	assert.Equal(t, "JE-0001,03/05/2024,6100,120.50,,Hosting", lines[1])
	assert.Equal(t, "JE-0001,03/05/2024,1000,,120.50,Hosting", lines[2])
	assert.Equal(t, "JE-0002,03/09/2024,,900.00,,Acme (Invoice 7)", lines[3])
}

func TestRender_IIF(t *testing.T) {
	out := render(t, domain.FormatIIF)
	assert.True(t, strings.HasPrefix(out, "!TRNS\tTRNSID\t"))
	assert.Contains(t, out, "TRNS\t1\tGENERAL JOURNAL\t03/05/2024\t6100\t120.50\tHosting")
	assert.Contains(t, out, "SPL\t1\tGENERAL JOURNAL\t03/05/2024\t1000\t-120.50\tHosting")
	assert.Equal(t, 3, strings.Count(out, "ENDTRNS\n"))
}

func TestRender_XeroAndDATEV(t *testing.T) {
	xero := render(t, domain.FormatXeroCSV)
	assert.Contains(t, xero, "Hosting,05/03/2024,Hosting,1000,Tax Exempt,-120.50")

	datev := render(t, domain.FormatDATEVCSV)
	assert.Contains(t, datev, "120,50;S;6100;1000;0503;s1;Hosting")
}

func TestRender_UnknownFormatFallsBackToCSV(t *testing.T) {
	out := render(t, domain.ExportFormat("weird"))
	assert.True(t, strings.HasPrefix(out, "Entry ID,Date,Description,Debit Account,Credit Account,Amount,Source,Status\n"))
	assert.Contains(t, out, "s2,2024-03-09,Acme (Invoice 7),,,900.00,vendor,approved")
}

func TestRender_Excel(t *testing.T) {
	data, err := NewRenderer().Render(gateway.ExportMeta{CompanyName: "Acme GmbH", Period: "2024-03", Format: domain.FormatExcel}, readyEntries())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	desc, err := f.GetCellValue(entriesSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Hosting", desc)

	company, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", company)

	count, err := f.GetCellValue(summarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}
