// file: cmd/diagnostics.go
// version: 2.0.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"fmt"
	"io"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/spf13/cobra"
)

var (
	diagnosticsCmd = &cobra.Command{
		Use:   "diagnostics",
		Short: "Debugging helpers",
		Long:  "Diagnostic utilities for inspecting seed files before starting the catalog.",
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Validate a seed file and preview its books",
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile, err := setupFileLogging()
			if err != nil {
				return err
			}
			defer logFile.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			return runDiagnosticsSeed(cmd.OutOrStdout(), config.AppConfig.SeedFile, config.AppConfig.MaxYear, limit)
		},
	}
)

func init() {
	seedCmd.Flags().Int("limit", 5, "Number of records to display")

	diagnosticsCmd.AddCommand(seedCmd)
}

func runDiagnosticsSeed(out io.Writer, path string, maxYear, limit int) error {
	if path == "" {
		return fmt.Errorf("no seed file specified (use --seed)")
	}

	items, err := catalog.LoadSeed(path, maxYear)
	if err != nil {
		return err
	}

	c := catalog.New()
	physical, digital := 0, 0
	for _, item := range items {
		c.Add(item)
		if item.Kind() == models.KindPhysical {
			physical++
		} else {
			digital++
		}
	}

	fmt.Fprintf(out, "Seed file: %s\n", path)
	fmt.Fprintf(out, "Books: %d (%d physical, %d digital)\n", c.Len(), physical, digital)

	for i, item := range c.Items() {
		if i >= limit {
			fmt.Fprintf(out, "... %d more\n", c.Len()-limit)
			break
		}
		fmt.Fprintf(out, "%2d. ID: %s\n", i+1, item.ID())
		fmt.Fprintf(out, "    %s\n", item)
	}

	if dup := duplicateTitles(c.Titles()); len(dup) > 0 {
		fmt.Fprintf(out, "Duplicate titles (only the first is reachable): %v\n", dup)
	}
	fmt.Fprintf(out, "Available physical books: %d\n", c.AvailablePhysical())
	return nil
}

func duplicateTitles(titles []string) []string {
	seen := make(map[string]int)
	var dup []string
	for _, t := range titles {
		seen[t]++
		if seen[t] == 2 {
			dup = append(dup, t)
		}
	}
	return dup
}
