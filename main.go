package main

import (
	"fmt"
	"log"
	"os"

	"github.com/suenkler-ai/scraper-summarizer/internal/history"
	"github.com/suenkler-ai/scraper-summarizer/internal/summarize"
	"github.com/suenkler-ai/scraper-summarizer/pkg/help"
	"github.com/urfave/cli/v2"
)

func summarizeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "url",
			Usage: "URL of the web page to fetch and summarize",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "write the summary to `PATH` instead of stdout (overwrites)",
		},
		&cli.StringFlag{
			Name:  "engine",
			Value: "browser",
			Usage: "fetch engine: browser (rendered) or http (static)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "page-load timeout (default from config, 60s)",
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "force the summary language, skipping detection",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "prefix the output with the detected language",
		},
		&cli.IntFlag{
			Name:  "max-words",
			Usage: "truncate page text to this many words before summarizing",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "bypass the page-text cache",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Value: "24h",
			Usage: "page-text cache TTL",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "optional YAML config overlay",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "log errors only",
		},
	}
}

// requireURL rejects bare invocations before the pipeline starts.
func requireURL(c *cli.Context) error {
	if c.String("url") == "" {
		_ = cli.ShowSubcommandHelp(c)
		return cli.Exit("Error: --url flag is required", 2)
	}
	return summarize.Action(c)
}

func main() {
	app := &cli.App{
		Name:  "scraper-summarizer",
		Usage: "fetch a web page with an automated browser and summarize it with a hosted LLM",
		// Bare invocation with flags behaves like the summarize command.
		Flags:  summarizeFlags(),
		Action: requireURL,
		Commands: []*cli.Command{
			{
				Name:   "summarize",
				Usage:  "fetch one URL and print or save its summary",
				Flags:  summarizeFlags(),
				Action: requireURL,
			},
			{
				Name:  "history",
				Usage: "list past runs recorded in the local database",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to list",
					},
				},
				Action: history.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show one run including its stored summary",
						ArgsUsage: "[run-id]",
						Action:    history.ShowAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a quick-reference of common invocations",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
