// Package history implements the run-history CLI commands.
package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suenkler-ai/scraper-summarizer/pkg/db"
	"github.com/urfave/cli/v2"
)

// ListAction prints the most recent runs as a table.
func ListAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-9s %-8s %-10s %-8s %-40s\n",
		"ID", "Created", "Engine", "Status", "Language", "Words", "URL")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-9s %-8s %-10s %-8d %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Engine,
			r.Status,
			r.Language,
			r.WordCount,
			truncate(r.URL, 40),
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'scraper-summarizer history show <id>' to see a stored summary\n")

	return nil
}

// ShowAction prints one run's detail including the stored summary.
func ShowAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("URL:       %s\n", run.URL)
	fmt.Printf("Engine:    %s\n", run.Engine)
	fmt.Printf("Status:    %s\n", run.Status)
	if run.Language != "" {
		fmt.Printf("Language:  %s\n", run.Language)
	}
	fmt.Printf("Words:     %d\n", run.WordCount)
	if run.OutputPath != "" {
		fmt.Printf("Output:    %s\n", run.OutputPath)
	}
	fmt.Printf("Duration:  %dms\n", run.DurationMS)

	if run.Status == "failed" {
		fmt.Printf("\nError (%s): %s\n", run.ErrorType, run.ErrorMessage)
		return nil
	}

	fmt.Printf("\nSummary:\n")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(run.Summary)

	return nil
}

// runIDOrLatest resolves the positional run id argument, defaulting to the
// most recent run when omitted.
func runIDOrLatest(c *cli.Context, database *db.DB) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return database.LatestRunID()
	}

	runID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run id %q", arg)
	}
	return runID, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
