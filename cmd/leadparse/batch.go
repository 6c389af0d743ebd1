package main

import (
	"fmt"
	"io"
	"os"

	"autohuis/backoffice-leads/internal/dto"
	"autohuis/backoffice-leads/internal/handlers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse every lead in a CSV export",
		Long: `Reads leads from a CSV file and writes one row of extracted fields per lead.

Input columns: first_name, last_name, email, phone, source, interested_vehicle, notes.
Only notes is required; extra columns are ignored.
Output columns: customer_name, email, phone, vehicle_interest, subject, message.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.S().Named("batch")

			in, closeIn, err := openInput(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()

			leads, err := readLeadsCSV(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", inPath, err)
			}

			results := make([]dto.ParsedLeadInfo, len(leads))
			unknown := 0
			for i := range leads {
				results[i] = handlers.ParseLeadData(&leads[i])
				if results[i].CustomerName == handlers.UnknownCustomerName {
					unknown++
				}
			}

			out, err := openOutput(outPath, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := writeResults(out, results); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}

			log.Infof("Parsed %d leads (%d without customer name)", len(leads), unknown)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input CSV file, or - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output CSV file, or - for stdout")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, nil
}

// writeResults writes the CSV and closes out; a failed close fails the batch
func writeResults(out io.WriteCloser, results []dto.ParsedLeadInfo) error {
	if err := writeParsedCSV(out, results); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
