package dto

import (
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UploadReceiptForm is the non-file part of a receipt upload.
type UploadReceiptForm struct {
	CompanyID string `form:"companyId" binding:"required"`
}

// UpdateReceiptRequest holds reviewed receipt fields. Nil fields are left untouched.
type UpdateReceiptRequest struct {
	Vendor   *string          `json:"vendor,omitempty" binding:"omitempty,max=200"`
	Date     *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
	Currency *string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	Category *string          `json:"category,omitempty" binding:"omitempty,max=100"`
}

// ToReceiptUpdate converts the request to a domain.ReceiptUpdate.
func (r UpdateReceiptRequest) ToReceiptUpdate() domain.ReceiptUpdate {
	return domain.ReceiptUpdate{
		Vendor:   r.Vendor,
		Date:     r.Date,
		Total:    r.Total,
		Tax:      r.Tax,
		Currency: r.Currency,
		Category: r.Category,
	}
}

// ExportReceiptsRequest selects the receipts to put in a spreadsheet.
type ExportReceiptsRequest struct {
	CompanyID  string   `json:"companyId" binding:"required"`
	ReceiptIDs []string `json:"receiptIds" binding:"required,min=1,dive,required"`
}
