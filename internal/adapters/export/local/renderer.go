package local

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/shopspring/decimal"
)

// Renderer writes journal-entry exports in the supported accounting formats.
type Renderer struct{}

var _ gateway.ExportRenderer = (*Renderer)(nil)

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// exportRow is one entry flattened for export.
type exportRow struct {
	EntryID       string
	Date          time.Time
	RawDate       string
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	SourceType    domain.SourceType
	Status        domain.SuggestionStatus
}

func toRows(entries []domain.Suggestion) []exportRow {
	rows := make([]exportRow, 0, len(entries))
	for _, e := range entries {
		summary := e.Source.Summary()
		row := exportRow{
			EntryID:     e.ID,
			RawDate:     summary.Date,
			Description: summary.Description,
			Amount:      summary.Amount.Abs(),
			SourceType:  e.Source.Type(),
			Status:      e.Status,
		}
		if d, err := time.Parse("2006-01-02", summary.Date); err == nil {
			row.Date = d
		}
		if e.HasProposal() {
			row.DebitAccount = e.SuggestedJE.DebitAccount
			row.CreditAccount = e.SuggestedJE.CreditAccount
			row.Amount = e.SuggestedJE.Amount
			if e.SuggestedJE.Memo != "" {
				row.Description = e.SuggestedJE.Memo
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// formatDate renders the entry date in layout, or the raw date when it did not parse.
func (r exportRow) formatDate(layout string) string {
	if r.Date.IsZero() {
		return r.RawDate
	}
	return r.Date.Format(layout)
}

// Render produces the file for meta.Format. Unknown formats are written as plain CSV.
func (r *Renderer) Render(meta gateway.ExportMeta, entries []domain.Suggestion) ([]byte, error) {
	rows := toRows(entries)
	switch meta.Format {
	case domain.FormatExcel:
		return renderXLSX(meta, rows)
	case domain.FormatQBCSV:
		return writeRecords(',', quickBooksRecords(rows))
	case domain.FormatIIF:
		return writeRecords('\t', iifRecords(rows))
	case domain.FormatXeroCSV:
		return writeRecords(',', xeroRecords(rows))
	case domain.FormatDATEVCSV:
		return writeRecords(';', datevRecords(rows))
	default:
		return writeRecords(',', plainRecords(rows))
	}
}

func writeRecords(comma rune, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = comma
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("writing export records: %w", err)
	}
	return buf.Bytes(), nil
}

func plainRecords(rows []exportRow) [][]string {
	records := [][]string{{"Entry ID", "Date", "Description", "Debit Account", "Credit Account", "Amount", "Source", "Status"}}
	for _, row := range rows {
		records = append(records, []string{
			row.EntryID,
			row.formatDate("2006-01-02"),
			row.Description,
			row.DebitAccount,
			row.CreditAccount,
			row.Amount.StringFixed(2),
			string(row.SourceType),
			string(row.Status),
		})
	}
	return records
}

// quickBooksRecords writes one debit and one credit line per journal number.
func quickBooksRecords(rows []exportRow) [][]string {
	records := [][]string{{"Journal No", "Journal Date", "Account", "Debits", "Credits", "Description"}}
	for i, row := range rows {
		no := fmt.Sprintf("JE-%04d", i+1)
		date := row.formatDate("01/02/2006")
		amount := row.Amount.StringFixed(2)
		records = append(records,
			[]string{no, date, row.DebitAccount, amount, "", row.Description},
			[]string{no, date, row.CreditAccount, "", amount, row.Description},
		)
	}
	return records
}

// iifRecords writes QuickBooks Desktop general journal transactions.
func iifRecords(rows []exportRow) [][]string {
	records := [][]string{
		{"!TRNS", "TRNSID", "TRNSTYPE", "DATE", "ACCNT", "AMOUNT", "MEMO"},
		{"!SPL", "SPLID", "TRNSTYPE", "DATE", "ACCNT", "AMOUNT", "MEMO"},
		{"!ENDTRNS"},
	}
	for i, row := range rows {
		id := fmt.Sprint(i + 1)
		date := row.formatDate("01/02/2006")
		memo := strings.ReplaceAll(row.Description, "\t", " ")
		records = append(records,
			[]string{"TRNS", id, "GENERAL JOURNAL", date, row.DebitAccount, row.Amount.StringFixed(2), memo},
			[]string{"SPL", id, "GENERAL JOURNAL", date, row.CreditAccount, row.Amount.Neg().StringFixed(2), memo},
			[]string{"ENDTRNS"},
		)
	}
	return records
}

// xeroRecords writes a Xero manual journal import; credits are negative amounts.
func xeroRecords(rows []exportRow) [][]string {
	records := [][]string{{"*Narration", "*Date", "Description", "*AccountCode", "*TaxRate", "*Amount"}}
	for _, row := range rows {
		date := row.formatDate("02/01/2006")
		records = append(records,
			[]string{row.Description, date, row.Description, row.DebitAccount, "Tax Exempt", row.Amount.StringFixed(2)},
			[]string{row.Description, date, row.Description, row.CreditAccount, "Tax Exempt", row.Amount.Neg().StringFixed(2)},
		)
	}
	return records
}

// datevRecords writes the booking columns of a DATEV batch with decimal commas.
func datevRecords(rows []exportRow) [][]string {
	records := [][]string{{"Umsatz (ohne Soll/Haben-Kz)", "Soll/Haben-Kennzeichen", "Konto", "Gegenkonto (ohne BU-Schlüssel)", "Belegdatum", "Belegfeld 1", "Buchungstext"}}
	for _, row := range rows {
		records = append(records, []string{
			strings.Replace(row.Amount.StringFixed(2), ".", ",", 1),
			"S",
			row.DebitAccount,
			row.CreditAccount,
			row.formatDate("0201"),
			row.EntryID,
			truncate(row.Description, 60),
		})
	}
	return records
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
