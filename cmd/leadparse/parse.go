package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"autohuis/backoffice-leads/internal/dto"
	"autohuis/backoffice-leads/internal/handlers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type parseOptions struct {
	firstName string
	lastName  string
	email     string
	phone     string
	notes     string
	source    string
	vehicle   string
	jsonPath  string
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a single lead and print the extracted fields as JSON",
		Long: `Parses one lead given through flags, or as a JSON document with --json.

Examples:
  leadparse parse --source website --notes "* Jan Jansen * jan@example.com 0612345678"
  leadparse parse --json lead.json
  cat lead.json | leadparse parse --json -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lead, err := opts.lead(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if lead.Source != "" && !lead.Source.Valid() {
				return fmt.Errorf("unknown source %q", lead.Source)
			}

			parsed := handlers.ParseLeadData(lead)
			zap.S().Named("parse").Debugf("Parsed lead: source=%s, customer=%s", lead.Source, parsed.CustomerName)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parsed)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.firstName, "first-name", "", "Lead first name")
	flags.StringVar(&opts.lastName, "last-name", "", "Lead last name")
	flags.StringVar(&opts.email, "email", "", "Lead email address")
	flags.StringVar(&opts.phone, "phone", "", "Lead phone number")
	flags.StringVar(&opts.notes, "notes", "", "Free text of the lead (forwarded mail, form message)")
	flags.StringVar(&opts.source, "source", "", "Lead source (website, autotrack, marktplaats, autoscout24, ...)")
	flags.StringVar(&opts.vehicle, "vehicle", "", "Interested vehicle, used verbatim when set")
	flags.StringVar(&opts.jsonPath, "json", "", "Read the lead as JSON from a file, or - for stdin")
	cmd.MarkFlagsMutuallyExclusive("json", "notes")

	return cmd
}

// lead builds the lead from --json or from the individual flags
func (o parseOptions) lead(stdin io.Reader) (*dto.Lead, error) {
	if o.jsonPath == "" {
		return &dto.Lead{
			FirstName:         o.firstName,
			LastName:          o.lastName,
			Email:             o.email,
			Phone:             o.phone,
			Notes:             o.notes,
			Source:            dto.LeadSource(o.source),
			InterestedVehicle: o.vehicle,
		}, nil
	}

	var r io.Reader = stdin
	if o.jsonPath != "-" {
		f, err := os.Open(o.jsonPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open lead JSON: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lead dto.Lead
	if err := json.NewDecoder(r).Decode(&lead); err != nil {
		return nil, fmt.Errorf("failed to parse lead JSON: %w", err)
	}
	return &lead, nil
}
