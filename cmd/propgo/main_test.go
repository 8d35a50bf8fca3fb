package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "propgo" {
		t.Errorf("Expected root command use to be 'propgo', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expectedCommands := []string{
		"forecast",
		"stress",
		"loan",
		"validate",
		"tui",
		"version",
	}

	registered := rootCmd.Commands()
	for _, expectedCmd := range expectedCommands {
		found := false
		for _, c := range registered {
			if c.Name() == expectedCmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected command '%s' to be registered with root command", expectedCmd)
		}
	}
}

func TestRootCommand_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	if buf.String() == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestForecastCommandFlags(t *testing.T) {
	if forecastCmd.Flags().Lookup("format") == nil {
		t.Error("Expected forecast command to have a format flag")
	}
	if forecastCmd.Flags().Lookup("debug") == nil {
		t.Error("Expected forecast command to have a debug flag")
	}
}

func TestLoanCommandFlags(t *testing.T) {
	if loanCmd.Flags().Lookup("loan") == nil {
		t.Error("Expected loan command to have a loan flag")
	}
	if loanCmd.Flags().Lookup("months") == nil {
		t.Error("Expected loan command to have a months flag")
	}
}

func TestValidateCommand(t *testing.T) {
	scenario := `
name: smoke
start_date: 2026-01-01T00:00:00Z
horizon_years: 10
profile:
  birth_date: 1986-01-01T00:00:00Z
  retirement_age: 65
  salary_cents_pa: 12000000
loans:
  - id: loan1
    start_date: 2026-01-01T00:00:00Z
    start_balance_cents: 60000000
    annual_rate: 0.06
    term_years: 30
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"validate", path})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("Expected validate to accept a well-formed scenario, got %v", err)
	}
}
