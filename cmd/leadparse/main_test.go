package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autohuis/backoffice-leads/internal/dto"
	"autohuis/backoffice-leads/internal/handlers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree with args and returns stdout
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd_Flags(t *testing.T) {
	out, err := runCLI(t, "",
		"parse",
		"--source", "website",
		"--notes", "* Jan Jansen * jan.jansen@example.com 0612345678 interesse in de Volkswagen Golf. Met vriendelijke groet",
	)
	require.NoError(t, err)

	var parsed dto.ParsedLeadInfo
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "Jan Jansen", parsed.CustomerName)
	assert.Equal(t, "jan.jansen@example.com", parsed.Email)
	assert.Equal(t, "0612345678", parsed.Phone)
	assert.Equal(t, "Volkswagen Golf", parsed.VehicleInterest)
	assert.Equal(t, "Website Aanvraag", parsed.Subject)
}

func TestParseCmd_VehicleFlagIsVerbatim(t *testing.T) {
	out, err := runCLI(t, "", "parse", "--vehicle", "BMW 320i Touring", "--notes", "interesse in de audi a4.")
	require.NoError(t, err)

	var parsed dto.ParsedLeadInfo
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "BMW 320i Touring", parsed.VehicleInterest)
}

func TestParseCmd_JSONFromStdin(t *testing.T) {
	out, err := runCLI(t, `{"source": "autotrack", "notes": "AutoTrack | Mazda CX-5\n* Kees Visser *"}`, "parse", "--json", "-")
	require.NoError(t, err)

	var parsed dto.ParsedLeadInfo
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "mazda cx-5", parsed.Subject)
}

func TestParseCmd_JSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lead.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"first_name": "Anna", "last_name": "Smit", "phone": "+31 6 12345678", "notes": "* Anna Smit *"}`), 0o600))

	out, err := runCLI(t, "", "parse", "--json", path)
	require.NoError(t, err)

	var parsed dto.ParsedLeadInfo
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "Anna Smit", parsed.CustomerName)
	assert.Equal(t, "+31612345678", parsed.Phone)
	assert.Equal(t, handlers.DefaultSubject, parsed.Subject)
}

func TestParseCmd_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"unknown source", "", []string{"parse", "--source", "fax"}},
		{"invalid json", "{", []string{"parse", "--json", "-"}},
		{"missing file", "", []string{"parse", "--json", filepath.Join(t.TempDir(), "missing.json")}},
		{"json and notes together", "", []string{"parse", "--json", "-", "--notes", "hallo"}},
		{"positional argument", "", []string{"parse", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestBatchCmd_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "leads.csv")
	out := filepath.Join(dir, "parsed.csv")
	input := "first_name,last_name,email,phone,source,interested_vehicle,notes\n" +
		"Jan,Jansen,jan@example.com,06 12345678,website,,* Jan Jansen * interesse in de Kia Niro.\n" +
		",,,,autotrack,Opel Corsa,\"AutoTrack | Opel Corsa 1.2\n* Piet Bakker *\"\n"
	require.NoError(t, os.WriteFile(in, []byte(input), 0o600))

	stdout, err := runCLI(t, "", "batch", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(out)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSpace(string(written)), "\n")
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "customer_name,email,phone,vehicle_interest,subject,message", rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "Jan Jansen,jan@example.com,0612345678,Kia Niro,Website Aanvraag,"), rows[1])
	assert.Contains(t, string(written), "Opel Corsa,opel corsa 1.2")
}

func TestBatchCmd_StdinToStdout(t *testing.T) {
	stdout, err := runCLI(t, "notes\n* Anna Smit * anna@example.com\n", "batch", "--in", "-")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "Anna Smit,anna@example.com,,,Lead,* anna smit * anna@example.com", rows[1])
}

func TestBatchCmd_Errors(t *testing.T) {
	t.Run("missing --in", func(t *testing.T) {
		_, err := runCLI(t, "", "batch")
		assert.Error(t, err)
	})

	t.Run("missing notes column", func(t *testing.T) {
		_, err := runCLI(t, "first_name\nJan\n", "batch", "--in", "-")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `missing required column "notes"`)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := runCLI(t, "", "batch", "--in", filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})
}

type closeErrWriter struct {
	bytes.Buffer
	closed bool
}

func (w *closeErrWriter) Close() error {
	w.closed = true
	return errors.New("close failed")
}

func TestWriteResults_CloseErrorFailsBatch(t *testing.T) {
	out := &closeErrWriter{}

	err := writeResults(out, []dto.ParsedLeadInfo{{CustomerName: "Anna Smit"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
	assert.True(t, out.closed)
	assert.Contains(t, out.String(), "Anna Smit")
}

func TestBatchCmd_FullDiskFails(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	in := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(in, []byte("notes\n* Anna Smit *\n"), 0o600))

	_, err := runCLI(t, "", "batch", "--in", in, "--out", "/dev/full")

	assert.Error(t, err)
}
