package domain

import "fmt"

// ExportFormat is the target accounting-system file format of an export.
type ExportFormat string

const (
	FormatCSV      ExportFormat = "csv"
	FormatExcel    ExportFormat = "excel"
	FormatQBCSV    ExportFormat = "qb-csv"
	FormatIIF      ExportFormat = "iif"
	FormatXeroCSV  ExportFormat = "xero-csv"
	FormatDATEVCSV ExportFormat = "datev-csv"
)

// ExportSet selects which entries an export covers.
type ExportSet string

const (
	ExportReady  ExportSet = "ready"
	ExportPosted ExportSet = "posted"
)

type formatSpec struct {
	extension string
	name      string
}

var exportFormats = map[ExportFormat]formatSpec{
	FormatCSV:      {extension: "csv", name: "CSV"},
	FormatExcel:    {extension: "xlsx", name: "Excel"},
	FormatQBCSV:    {extension: "csv", name: "QuickBooks"},
	FormatIIF:      {extension: "iif", name: "QuickBooks_IIF"},
	FormatXeroCSV:  {extension: "csv", name: "Xero"},
	FormatDATEVCSV: {extension: "csv", name: "DATEV"},
}

// Known reports whether f is one of the supported formats.
func (f ExportFormat) Known() bool {
	_, ok := exportFormats[f]
	return ok
}

// Extension returns the file extension without the dot. Unknown formats use csv.
func (f ExportFormat) Extension() string {
	if spec, ok := exportFormats[f]; ok {
		return spec.extension
	}
	return "csv"
}

// DisplayName returns the label used in file names. Unknown formats use the raw token.
func (f ExportFormat) DisplayName() string {
	if spec, ok := exportFormats[f]; ok {
		return spec.name
	}
	return string(f)
}

// ExportFilename builds JournalEntries[_Posted]_<company>_<period>_<FormatName>.<ext>.
func ExportFilename(set ExportSet, companyName string, period Period, format ExportFormat) string {
	prefix := "JournalEntries"
	if set == ExportPosted {
		prefix += "_Posted"
	}
	return fmt.Sprintf("%s_%s_%s_%s.%s", prefix, companyName, period, format.DisplayName(), format.Extension())
}
