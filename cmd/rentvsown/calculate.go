package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/internal/domain"
	"github.com/rasmushaa/renting-vs-owning/internal/output"
)

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [config-file]",
		Short: "Project renting against owning for one or more scenarios",
		Long: `Without a configuration file a single scenario is built from the reference
values and the parameter flags. With a file, parameter flags override the
corresponding value in every scenario of the file.`,
		Example: `  rentvsown calculate --rent 1100
  rentvsown calculate scenarios.yaml --format html --output reports
  rentvsown calculate --format markdown --render
  rentvsown calculate scenarios.yaml --select '$.scenarios[*].summary.winner'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCalculate,
	}
	cmd.Flags().StringP("format", "f", "console", "output format (see 'rentvsown formats'), or 'all'")
	cmd.Flags().StringP("output", "o", ".", "directory for file formats")
	cmd.Flags().String("name", "Scenario", "scenario name when no configuration file is given")
	cmd.Flags().String("start-date", "", "calendar date of month 1 (YYYY-MM-DD), used for labels only")
	cmd.Flags().String("select", "", "print the JSONPath selection of the JSON result instead of a report")
	cmd.Flags().Bool("render", false, "render the markdown report for the terminal")
	cmd.Flags().Int("width", 100, "word wrap width for --render")
	addScenarioFlags(cmd)
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfiguration(cmd, args)
	if err != nil {
		return err
	}

	results, err := newEngine(cmd).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if sel, _ := cmd.Flags().GetString("select"); sel != "" {
		return writeSelection(out, results, sel)
	}
	if render, _ := cmd.Flags().GetBool("render"); render {
		width, _ := cmd.Flags().GetInt("width")
		return writeRendered(out, results, width)
	}

	format, _ := cmd.Flags().GetString("format")
	if output.IsConsoleFormat(format) {
		return output.WriteReport(out, results, format)
	}
	dir, _ := cmd.Flags().GetString("output")
	files, err := output.GenerateReport(results, format, dir)
	for _, f := range files {
		fmt.Fprintf(out, "Report written to %s\n", f)
	}
	return err
}

func buildConfiguration(cmd *cobra.Command, args []string) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if len(args) == 1 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		name, _ := cmd.Flags().GetString("name")
		cfg = &domain.Configuration{
			Scenarios: []domain.Scenario{{Name: name, Parameters: domain.DefaultParameters()}},
		}
	}

	for i := range cfg.Scenarios {
		if err := applyScenarioFlags(cmd, &cfg.Scenarios[i].Parameters); err != nil {
			return nil, err
		}
	}

	if raw, _ := cmd.Flags().GetString("start-date"); raw != "" {
		start, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("--start-date: %w", err)
		}
		cfg.StartDate = start
	}

	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeSelection evaluates a JSONPath expression against the JSON form of results.
func writeSelection(w io.Writer, results *domain.ScenarioComparison, path string) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("--select %q: %w", path, err)
	}

	if s, ok := val.(string); ok {
		_, err = fmt.Fprintln(w, s)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(val)
}

func writeRendered(w io.Writer, results *domain.ScenarioComparison, width int) error {
	md, err := output.MarkdownFormatter{}.Format(results)
	if err != nil {
		return err
	}
	text, err := output.RenderTerminal(md, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
