package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"autohuis/backoffice-leads/internal/dto"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

const (
	leadsTable = "leads"

	// DefaultLeadLimit is the page size used when a filter sets no limit
	DefaultLeadLimit = 50
	// MaxLeadLimit caps the page size of a single lead query
	MaxLeadLimit = 200
)

var (
	// ErrLeadNotFound is returned by GetLead when no lead has the requested id
	ErrLeadNotFound = errors.New("lead not found")
	// ErrRowNotFound is returned by GetRowByID when the table has no matching row
	ErrRowNotFound = errors.New("row not found")
)

// LeadStore reads leads from persistent storage
type LeadStore interface {
	// ListLeads returns one page of leads matching filter, newest first, and the total match count
	ListLeads(filter dto.LeadFilter) ([]dto.Lead, int64, error)
	// GetLead returns a single lead or ErrLeadNotFound
	GetLead(id string) (*dto.Lead, error)
}

// SupabaseHandler handles database operations using Supabase
type SupabaseHandler struct {
	client *supabase.Client
	log    *zap.SugaredLogger
}

var _ LeadStore = (*SupabaseHandler)(nil)

// QueryResult represents the result of a database query
type QueryResult struct {
	// Data contains the rows returned from the query
	Data []map[string]interface{}
	// Count is the total count of rows (if requested)
	Count int64
}

// NewSupabaseHandler creates a new SupabaseHandler instance
// url is the Supabase project URL (e.g., "https://xxx.supabase.co")
// key is the Supabase service role key
func NewSupabaseHandler(url, key string) (*SupabaseHandler, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}

	log := zap.S().Named("SupabaseHandler")
	log.Infof("Initializing with URL: %s", url)

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		log.Errorf("Failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseHandler{
		client: client,
		log:    log,
	}, nil
}

// GetRowsWithFilter retrieves rows from a table where filterColumn equals filterValue
// columns is a comma-separated list of columns to select (use "*" for all)
func (h *SupabaseHandler) GetRowsWithFilter(table, columns, filterColumn string, filterValue interface{}) (*QueryResult, error) {
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	if columns == "" {
		columns = "*"
	}
	if filterColumn == "" {
		return nil, fmt.Errorf("filter column is required")
	}

	h.log.Debugf("GetRowsWithFilter: table=%s, columns=%s, filter=%s=%v", table, columns, filterColumn, filterValue)

	data, count, err := h.client.From(table).
		Select(columns, "exact", false).
		Eq(filterColumn, fmt.Sprintf("%v", filterValue)).
		Execute()
	if err != nil {
		h.log.Errorf("Query failed: %v", err)
		return nil, fmt.Errorf("failed to query table %s with filter: %w", table, err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		h.log.Errorf("Failed to parse response: %v", err)
		return nil, fmt.Errorf("failed to parse query response: %w", err)
	}

	h.log.Debugf("Query successful: %d rows returned", len(rows))

	return &QueryResult{
		Data:  rows,
		Count: count,
	}, nil
}

// GetRowByID retrieves a single row by its id column
func (h *SupabaseHandler) GetRowByID(table, columns string, id interface{}) (map[string]interface{}, error) {
	result, err := h.GetRowsWithFilter(table, columns, "id", id)
	if err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("no row found with id %v in table %s: %w", id, table, ErrRowNotFound)
	}

	return result.Data[0], nil
}

// ListLeads retrieves one page of leads, newest first
func (h *SupabaseHandler) ListLeads(filter dto.LeadFilter) ([]dto.Lead, int64, error) {
	limit, offset := PageBounds(filter)

	h.log.Infof("ListLeads: source=%s, status=%s, limit=%d, offset=%d", filter.Source, filter.Status, limit, offset)

	query := h.client.From(leadsTable).Select("*", "exact", false)
	if filter.Source != "" {
		query = query.Eq("source", string(filter.Source))
	}
	if filter.Status != "" {
		query = query.Eq("status", string(filter.Status))
	}
	// Filters are keyed by column, so a closed range has to go through and=(...)
	switch {
	case filter.CreatedAfter != nil && filter.CreatedBefore != nil:
		query = query.And(fmt.Sprintf(`created_at.gte."%s",created_at.lte."%s"`,
			filter.CreatedAfter.UTC().Format(time.RFC3339),
			filter.CreatedBefore.UTC().Format(time.RFC3339)), "")
	case filter.CreatedAfter != nil:
		query = query.Gte("created_at", filter.CreatedAfter.UTC().Format(time.RFC3339))
	case filter.CreatedBefore != nil:
		query = query.Lte("created_at", filter.CreatedBefore.UTC().Format(time.RFC3339))
	}

	data, count, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		h.log.Errorf("Failed to list leads: %v", err)
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	leads, err := decodeLeads(data)
	if err != nil {
		h.log.Errorf("Failed to parse leads response: %v", err)
		return nil, 0, err
	}

	h.log.Infof("Found %d leads (total %d)", len(leads), count)
	return leads, count, nil
}

// GetLead retrieves a lead by its ID
func (h *SupabaseHandler) GetLead(id string) (*dto.Lead, error) {
	h.log.Infof("GetLead: id=%s", id)

	row, err := h.GetRowByID(leadsTable, "*", id)
	if err != nil {
		if errors.Is(err, ErrRowNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	lead, err := leadFromRow(row)
	if err != nil {
		h.log.Errorf("Failed to parse lead %s: %v", id, err)
		return nil, err
	}
	return lead, nil
}

// PageBounds applies the default and maximum page size to a filter
func PageBounds(filter dto.LeadFilter) (limit, offset int) {
	limit = filter.Limit
	if limit <= 0 {
		limit = DefaultLeadLimit
	}
	if limit > MaxLeadLimit {
		limit = MaxLeadLimit
	}
	offset = filter.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func decodeLeads(data []byte) ([]dto.Lead, error) {
	var leads []dto.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse leads response: %w", err)
	}
	if leads == nil {
		leads = []dto.Lead{}
	}
	return leads, nil
}

// leadFromRow converts a generic row into a Lead through its JSON form
func leadFromRow(row map[string]interface{}) (*dto.Lead, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead row: %w", err)
	}
	var lead dto.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		return nil, fmt.Errorf("failed to parse lead row: %w", err)
	}
	return &lead, nil
}
