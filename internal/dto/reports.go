package dto

// SourceStats contains lead counts for a single source channel
// @Description Lead statistics for one source channel
type SourceStats struct {
	Source     LeadSource `json:"source"`
	Label      string     `json:"label"`
	TotalLeads int        `json:"total_leads"`
	WonLeads   int        `json:"won_leads"`
	// ConversionRate is won / total for the source, in percent
	ConversionRate float64 `json:"conversion_rate"`
}

// StatusUnknown is the report bucket for statuses that are not a known LeadStatus
const StatusUnknown LeadStatus = "unknown"

// StatusStats contains lead counts for a single pipeline status
// @Description Lead statistics for one pipeline status
type StatusStats struct {
	Status     LeadStatus `json:"status"`
	TotalLeads int        `json:"total_leads"`
}

// ExtractionCoverage counts how many leads yielded each extracted field
// @Description How often the text extractor found each field
type ExtractionCoverage struct {
	WithCustomerName    int `json:"with_customer_name"`
	WithEmail           int `json:"with_email"`
	WithPhone           int `json:"with_phone"`
	WithVehicleInterest int `json:"with_vehicle_interest"`
	// WithPortalSubject counts leads whose subject came from an "autotrack | ..." marker
	WithPortalSubject int `json:"with_portal_subject"`
}

// LeadReportResponse contains the lead dashboard data
// @Description Lead dashboard report for a period
type LeadReportResponse struct {
	TotalLeads int                `json:"total_leads"`
	BySource   []SourceStats      `json:"by_source"`
	ByStatus   []StatusStats      `json:"by_status"`
	Coverage   ExtractionCoverage `json:"coverage"`
	Period     ReportPeriod       `json:"period"`
}

// ReportPeriod indicates the time range of the report
// @Description Time range covered by the report
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DaysCount int    `json:"days_count"`
}
