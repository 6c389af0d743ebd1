package controllers

import (
	"math"
	"net/http"
	"time"

	"autohuis/backoffice-leads/internal/dto"
	"autohuis/backoffice-leads/internal/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportsController handles report-related HTTP requests
type ReportsController struct {
	store handlers.LeadStore
	now   func() time.Time
	log   *zap.SugaredLogger
}

// NewReportsController creates a new ReportsController instance
func NewReportsController(store handlers.LeadStore) *ReportsController {
	return &ReportsController{
		store: store,
		now:   time.Now,
		log:   zap.S().Named("ReportsController"),
	}
}

// GetLeadReport returns lead statistics for the dashboard
// @Summary Get lead report
// @Description Counts leads per source and status for a period and reports how often the text extractor found each field
// @Tags Reports
// @Accept json
// @Produce json
// @Param start_date query string false "Start date for the report period (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "End date for the report period (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.LeadReportResponse "Lead report"
// @Failure 400 {object} dto.ErrorResponse "Bad request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/leads [get]
func (c *ReportsController) GetLeadReport(ctx *gin.Context) {
	startDate, endDate, errMsg := parseDateRange(ctx, c.now())
	if errMsg != "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: errMsg,
		})
		return
	}

	leads, err := c.leadsInPeriod(startDate, endDate)
	if err != nil {
		c.log.Errorf("Failed to load leads for report: %v", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "failed to get leads: " + err.Error(),
		})
		return
	}

	c.log.Infof("Building lead report: start=%s, end=%s, leads=%d",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), len(leads))

	ctx.JSON(http.StatusOK, buildLeadReport(leads, startDate, endDate))
}

// leadsInPeriod pages through the store until every lead created in the period is loaded
func (c *ReportsController) leadsInPeriod(start, end time.Time) ([]dto.Lead, error) {
	filter := dto.LeadFilter{
		CreatedAfter:  &start,
		CreatedBefore: &end,
		Limit:         handlers.MaxLeadLimit,
	}

	var all []dto.Lead
	for {
		page, count, err := c.store.ListLeads(filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < filter.Limit || int64(len(all)) >= count {
			return all, nil
		}
		filter.Offset += len(page)
	}
}

// parseDateRange reads start_date and end_date, defaulting to the 30 days before now.
// A date-only end_date covers the whole day. errMsg is empty on success.
func parseDateRange(ctx *gin.Context, now time.Time) (start, end time.Time, errMsg string) {
	start = now.AddDate(0, 0, -30)
	end = now

	if startStr := ctx.Query("start_date"); startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			// Try date-only format
			t, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return start, end, "invalid start_date format, use RFC3339 or YYYY-MM-DD"
			}
		}
		start = t
	}

	if endStr := ctx.Query("end_date"); endStr != "" {
		t, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			t, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return start, end, "invalid end_date format, use RFC3339 or YYYY-MM-DD"
			}
			// Set to end of day
			t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		}
		end = t
	}

	if end.Before(start) {
		return start, end, "end_date must not be before start_date"
	}
	return start, end, ""
}

// buildLeadReport aggregates leads per source and status and measures extractor coverage
func buildLeadReport(leads []dto.Lead, start, end time.Time) dto.LeadReportResponse {
	bySource := make(map[dto.LeadSource]*dto.SourceStats)
	byStatus := make(map[dto.LeadStatus]int)
	var coverage dto.ExtractionCoverage

	for i := range leads {
		lead := &leads[i]

		source := lead.Source
		if !source.Valid() {
			source = dto.LeadSourceOther
		}
		stats, ok := bySource[source]
		if !ok {
			stats = &dto.SourceStats{Source: source, Label: source.Label()}
			bySource[source] = stats
		}
		stats.TotalLeads++
		if lead.Status == dto.LeadStatusWon {
			stats.WonLeads++
		}

		status := lead.Status
		switch {
		case status == "":
			status = dto.LeadStatusNew
		case !status.Valid():
			status = dto.StatusUnknown
		}
		byStatus[status]++

		parsed := handlers.ParseLeadData(lead)
		if parsed.CustomerName != handlers.UnknownCustomerName {
			coverage.WithCustomerName++
		}
		if parsed.Email != "" {
			coverage.WithEmail++
		}
		if parsed.Phone != "" {
			coverage.WithPhone++
		}
		if parsed.VehicleInterest != "" {
			coverage.WithVehicleInterest++
		}
		if handlers.HasPortalSubject(lead) {
			coverage.WithPortalSubject++
		}
	}

	response := dto.LeadReportResponse{
		TotalLeads: len(leads),
		BySource:   []dto.SourceStats{},
		ByStatus:   []dto.StatusStats{},
		Coverage:   coverage,
	}

	// Fixed display order keeps the dashboard stable between periods
	for _, source := range dto.LeadSources {
		stats, ok := bySource[source]
		if !ok {
			continue
		}
		stats.ConversionRate = percentage(stats.WonLeads, stats.TotalLeads)
		response.BySource = append(response.BySource, *stats)
	}
	for _, status := range dto.LeadStatuses {
		if n := byStatus[status]; n > 0 {
			response.ByStatus = append(response.ByStatus, dto.StatusStats{Status: status, TotalLeads: n})
		}
	}
	if n := byStatus[dto.StatusUnknown]; n > 0 {
		response.ByStatus = append(response.ByStatus, dto.StatusStats{Status: dto.StatusUnknown, TotalLeads: n})
	}

	daysCount := int(end.Sub(start).Hours() / 24)
	if daysCount < 1 {
		daysCount = 1
	}
	response.Period = dto.ReportPeriod{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		DaysCount: daysCount,
	}

	return response
}

// percentage returns part/total in percent, rounded to two decimals
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*10000/float64(total)) / 100
}
