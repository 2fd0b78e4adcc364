package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is an uploaded receipt together with the fields the backend extracted from it.
type Receipt struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"companyId"`
	FileName   string          `json:"fileName"`
	FileURL    string          `json:"fileUrl,omitempty"`
	Vendor     string          `json:"vendor,omitempty"`
	Date       string          `json:"date,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Tax        decimal.Decimal `json:"tax"`
	Currency   string          `json:"currency,omitempty"`
	Category   string          `json:"category,omitempty"`
	Status     string          `json:"status,omitempty"`
	Extracted  map[string]any  `json:"extracted,omitempty"`
	UploadedAt time.Time       `json:"uploadedAt"`
}

// ReceiptUpdate holds the reviewable receipt fields; nil means unchanged.
type ReceiptUpdate struct {
	Vendor   *string          `json:"vendor,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
	Currency *string          `json:"currency,omitempty"`
	Category *string          `json:"category,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ReceiptUpdate) IsEmpty() bool {
	return u.Vendor == nil && u.Date == nil && u.Total == nil && u.Tax == nil && u.Currency == nil && u.Category == nil
}

// FileBlob is a generated file returned by an export.
type FileBlob struct {
	Filename    string
	ContentType string
	Data        []byte
}
