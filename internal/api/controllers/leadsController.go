package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"autohuis/backoffice-leads/internal/api/middleware"
	"autohuis/backoffice-leads/internal/dto"
	"autohuis/backoffice-leads/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxBatchSize is used when the controller is created without a batch limit
const DefaultMaxBatchSize = 500

// LeadsController handles lead parsing and lead lookup HTTP requests
type LeadsController struct {
	store        handlers.LeadStore
	maxBatchSize int
	log          *zap.SugaredLogger
}

// NewLeadsController creates a new LeadsController instance.
// store may be nil, in which case only the parse endpoints are usable.
func NewLeadsController(store handlers.LeadStore, maxBatchSize int) *LeadsController {
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &LeadsController{
		store:        store,
		maxBatchSize: maxBatchSize,
		log:          zap.S().Named("LeadsController"),
	}
}

// StoreEnabled reports whether the list and detail endpoints have a backing store
func (ctrl *LeadsController) StoreEnabled() bool {
	return ctrl.store != nil
}

// Parse godoc
// @Summary      Parse a lead
// @Description  Extract customer name, email, phone, vehicle interest and subject from a lead's free text
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request body dto.Lead true "Lead to parse"
// @Success      200 {object} dto.LeadDetail "Lead with extracted fields"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid JSON or unknown source/status"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /leads/parse [post]
func (ctrl *LeadsController) Parse(c *gin.Context) {
	var lead dto.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	if err := validateLead(&lead); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ctrl.detail(&lead))
}

// ParseBatch godoc
// @Summary      Parse a batch of leads
// @Description  Run the text extractor over up to MAX_BATCH_SIZE leads; results keep the input order
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request body []dto.Lead true "Leads to parse"
// @Success      200 {array} dto.ParsedLeadInfo "Extracted fields per lead"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid JSON, empty or oversized batch"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /leads/parse/batch [post]
func (ctrl *LeadsController) ParseBatch(c *gin.Context) {
	var leads []dto.Lead
	if err := c.ShouldBindJSON(&leads); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	if len(leads) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "at least one lead is required",
		})
		return
	}
	if len(leads) > ctrl.maxBatchSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("batch of %d leads exceeds the maximum of %d", len(leads), ctrl.maxBatchSize),
		})
		return
	}

	for i := range leads {
		if err := validateLead(&leads[i]); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("leads[%d]: %v", i, err),
			})
			return
		}
	}

	results := make([]dto.ParsedLeadInfo, len(leads))
	for i := range leads {
		results[i] = parseAndRecord(&leads[i])
	}

	ctrl.log.Infof("Parsed batch of %d leads", len(leads))
	c.JSON(http.StatusOK, results)
}

// List godoc
// @Summary      List leads
// @Description  Page through stored leads, newest first, each with its extracted fields
// @Tags         leads
// @Produce      json
// @Param        source query string false "Lead source filter"
// @Param        status query string false "Lead status filter"
// @Param        limit query int false "Page size (default 50, max 200)"
// @Param        offset query int false "Number of leads to skip"
// @Success      200 {object} dto.LeadListResponse "Page of leads"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /leads [get]
func (ctrl *LeadsController) List(c *gin.Context) {
	filter, err := leadFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	leads, count, err := ctrl.store.ListLeads(filter)
	if err != nil {
		ctrl.log.Errorf("Failed to list leads: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "failed to list leads: " + err.Error(),
		})
		return
	}

	limit, offset := handlers.PageBounds(filter)
	response := dto.LeadListResponse{
		Leads:  make([]dto.LeadDetail, 0, len(leads)),
		Count:  count,
		Limit:  limit,
		Offset: offset,
	}
	for i := range leads {
		response.Leads = append(response.Leads, ctrl.detail(&leads[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary      Get a lead
// @Description  Fetch one stored lead with its extracted fields and contact candidates
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead ID (UUID)"
// @Success      200 {object} dto.LeadDetail "Lead with extracted fields"
// @Failure      400 {object} dto.ErrorResponse "Bad request - id is not a UUID"
// @Failure      404 {object} dto.ErrorResponse "Lead not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /leads/{id} [get]
func (ctrl *LeadsController) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "id must be a UUID",
		})
		return
	}

	lead, err := ctrl.store.GetLead(id)
	if err != nil {
		if errors.Is(err, handlers.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "lead not found",
			})
			return
		}
		ctrl.log.Errorf("Failed to get lead %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "failed to get lead: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ctrl.detail(lead))
}

func (ctrl *LeadsController) detail(lead *dto.Lead) dto.LeadDetail {
	return dto.LeadDetail{
		Lead:     lead,
		Parsed:   parseAndRecord(lead),
		Contacts: handlers.LeadContactsFor(lead),
	}
}

// parseAndRecord runs the extractor and counts the run and every placeholder it produced
func parseAndRecord(lead *dto.Lead) dto.ParsedLeadInfo {
	parsed := handlers.ParseLeadData(lead)

	middleware.RecordLeadParsed(string(lead.Source))
	if parsed.CustomerName == handlers.UnknownCustomerName {
		middleware.RecordParseFallback("customer_name")
	}
	if parsed.Email == "" {
		middleware.RecordParseFallback("email")
	}
	if parsed.Phone == "" {
		middleware.RecordParseFallback("phone")
	}
	if parsed.VehicleInterest == "" {
		middleware.RecordParseFallback("vehicle_interest")
	}
	if parsed.Subject == handlers.DefaultSubject {
		middleware.RecordParseFallback("subject")
	}
	return parsed
}

// validateLead rejects enum values the extractor and store do not know.
// Empty values are allowed.
func validateLead(lead *dto.Lead) error {
	if lead.Source != "" && !lead.Source.Valid() {
		return fmt.Errorf("unknown source %q", lead.Source)
	}
	if lead.Status != "" && !lead.Status.Valid() {
		return fmt.Errorf("unknown status %q", lead.Status)
	}
	return nil
}

func leadFilterFromQuery(c *gin.Context) (dto.LeadFilter, error) {
	var filter dto.LeadFilter

	if source := dto.LeadSource(c.Query("source")); source != "" {
		if !source.Valid() {
			return filter, fmt.Errorf("unknown source %q", source)
		}
		filter.Source = source
	}

	if status := dto.LeadStatus(c.Query("status")); status != "" {
		if !status.Valid() {
			return filter, fmt.Errorf("unknown status %q", status)
		}
		filter.Status = status
	}

	var err error
	if filter.Limit, err = nonNegativeQueryInt(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = nonNegativeQueryInt(c, "offset"); err != nil {
		return filter, err
	}
	return filter, nil
}

func nonNegativeQueryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}
