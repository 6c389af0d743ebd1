package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"autohuis/backoffice-leads/internal/dto"
)

var (
	requiredColumns = []string{"notes"}
	parsedColumns   = []string{"customer_name", "email", "phone", "vehicle_interest", "subject", "message"}
)

// readLeadsCSV reads leads by header name. Missing optional columns read as empty.
func readLeadsCSV(r io.Reader) ([]dto.Lead, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: header row is required")
	}
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	leads := []dto.Lead{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return leads, nil
		}
		if err != nil {
			return nil, err
		}

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		source := dto.LeadSource(strings.ToLower(strings.TrimSpace(get("source"))))
		if source != "" && !source.Valid() {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: unknown source %q", line, source)
		}

		leads = append(leads, dto.Lead{
			FirstName:         get("first_name"),
			LastName:          get("last_name"),
			Email:             get("email"),
			Phone:             get("phone"),
			Source:            source,
			InterestedVehicle: get("interested_vehicle"),
			Notes:             get("notes"),
		})
	}
}

// writeParsedCSV writes one row per result with the parsedColumns header
func writeParsedCSV(w io.Writer, results []dto.ParsedLeadInfo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(parsedColumns); err != nil {
		return err
	}
	for _, p := range results {
		if err := cw.Write([]string{
			p.CustomerName,
			p.Email,
			p.Phone,
			p.VehicleInterest,
			p.Subject,
			p.Message,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
