package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/propgo/property-forecast/internal/calculation"
	"github.com/propgo/property-forecast/internal/compare"
	"github.com/propgo/property-forecast/internal/config"
	"github.com/propgo/property-forecast/internal/output"
	"github.com/propgo/property-forecast/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "propgo",
	Short: "Property portfolio forecaster",
	Long:  "Long-horizon cashflow, debt and net-worth projections for a household property portfolio",
}

func newEngine(cmd *cobra.Command) *calculation.ForecastEngine {
	engine := calculation.NewForecastEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [scenario-file]",
	Short: "Run the monthly projection for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		result, err := newEngine(cmd).RunScenario(scenario)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unsupported format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var stressCmd = &cobra.Command{
	Use:   "stress [scenario-file]",
	Short: "Compare a scenario against its stress-test variant",
	Long: `Project the scenario twice: as given, and with its own stress parameters
applied (bumped loan rates, haircut growth, raised vacancy floors), then
show the milestone-by-milestone gap.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		comparison, err := compare.RunStressComparison(newEngine(cmd), scenario)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			data, err := compare.FormatJSON(comparison)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(data))
		case "console", "table":
			fmt.Print(compare.FormatTable(comparison))
		default:
			log.Fatalf("unsupported format %q (available: console, json)", format)
		}
	},
}

var loanCmd = &cobra.Command{
	Use:   "loan [scenario-file]",
	Short: "Print a single loan's amortization schedule and offset savings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		loanID, _ := cmd.Flags().GetString("loan")
		loan := scenario.LoanByID(loanID)
		if loan == nil {
			if loanID != "" || len(scenario.Loans) == 0 {
				log.Fatalf("loan %q not found in scenario", loanID)
			}
			loan = &scenario.Loans[0]
		}

		months, _ := cmd.Flags().GetInt("months")
		schedule := calculation.SimulateLoan(*loan, months)
		savings := calculation.OffsetSavings(*loan, months)

		fmt.Printf("LOAN %s (%s over %d years", loan.ID, output.FormatPercent(loan.AnnualRate), loan.TermYears)
		if loan.InterestOnlyYears > 0 {
			fmt.Printf(", %dy interest-only", loan.InterestOnlyYears)
		}
		fmt.Println(")")
		fmt.Println(strings.Repeat("=", 86))
		fmt.Printf("%6s %16s %14s %12s %12s %16s\n",
			"Month", "Balance", "Offset", "Interest", "Principal", "Payment")
		fmt.Println(strings.Repeat("-", 86))

		for _, lm := range schedule.Months {
			fmt.Printf("%6d %16s %14s %12s %12s %16s\n",
				lm.Month,
				output.FormatCurrency(lm.EndingBalance),
				output.FormatCurrency(lm.OffsetBalance),
				output.FormatCurrency(lm.InterestCharged),
				output.FormatCurrency(lm.PrincipalPayment),
				output.FormatCurrency(lm.TotalPayment))
		}

		fmt.Println(strings.Repeat("-", 86))
		fmt.Printf("Total interest: %s\n", output.FormatCurrency(schedule.TotalInterest))
		fmt.Printf("Total payments: %s\n", output.FormatCurrency(schedule.TotalPayments))
		fmt.Printf("Offset savings: %s\n", output.FormatCurrency(savings))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [scenario-file]",
	Short: "Browse a forecast interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		p := tea.NewProgram(tui.NewModel(scenario), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "propgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	forecastCmd.Flags().String("format", "console", "Output format (console, csv, json)")
	forecastCmd.Flags().Bool("debug", false, "Enable debug logging")

	stressCmd.Flags().String("format", "console", "Output format (console, json)")
	stressCmd.Flags().Bool("debug", false, "Enable debug logging")

	loanCmd.Flags().String("loan", "", "Loan id (defaults to the first loan)")
	loanCmd.Flags().Int("months", 0, "Months to simulate (0 = full term)")
	loanCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(loanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
