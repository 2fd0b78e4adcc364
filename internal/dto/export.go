package dto

import "github.com/SscSPs/journal_lifecycle_app/internal/core/domain"

// ExportRequest asks for a file with the Ready or Posted entries of a scope.
type ExportRequest struct {
	CompanyID   string `json:"companyId" binding:"required"`
	CompanyName string `json:"companyName" binding:"required,max=200"`
	Period      string `json:"period" binding:"required,period"`
	Format      string `json:"format" binding:"required,exportformat"`
	Set         string `json:"set" binding:"omitempty,oneof=ready posted"`
}

// ToScope returns the scope the export reads its entries from.
func (r ExportRequest) ToScope() domain.Scope {
	return domain.Scope{CompanyID: r.CompanyID, Period: domain.Period(r.Period)}
}

// ExportSet returns the requested set, defaulting to ready.
func (r ExportRequest) ExportSet() domain.ExportSet {
	if r.Set == string(domain.ExportPosted) {
		return domain.ExportPosted
	}
	return domain.ExportReady
}
