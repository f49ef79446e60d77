package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/johnquangdev/call-summarizer/internal/adapter/presenter"
	"github.com/johnquangdev/call-summarizer/internal/app"
	"github.com/johnquangdev/call-summarizer/internal/usecase/ingestion"
	"github.com/johnquangdev/call-summarizer/pkg/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "callctl",
		Usage: "Process call recordings and chat exports without the HTTP server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log pipeline stages to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Transcribe or parse a file, save the transcript and print the summary",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "transcript",
						Usage: "Also print the parsed transcript",
					},
				},
			},
			{
				Name:   "summary",
				Usage:  "Print the latest saved summary",
				Action: summaryCommand,
			},
			{
				Name:   "summaries",
				Usage:  "Print every row of the summary log",
				Action: summariesCommand,
			},
			{
				Name:   "transcript",
				Usage:  "Print the latest saved transcript",
				Action: transcriptCommand,
			},
			{
				Name:   "archived",
				Usage:  "List archived uploads (requires STORAGE_ENABLED)",
				Action: archivedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Object name prefix",
						Value: "uploads/",
					},
				},
			},
		},
	}
}

func setup(c *cli.Context) (*app.App, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, nil, err
		}
	}

	a, err := app.New(c.Context, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a, logger, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}
	path := c.Args().First()

	a, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()
	defer logger.Sync()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := a.Pipeline.Ingest(ctx(c), ingestion.Upload{FileName: filepath.Base(path), Body: f})
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"status":  "success",
		"summary": result.Summary,
	}
	if c.Bool("transcript") {
		out["transcript"] = presenter.ToTranscriptResponse(result.Utterances)
	}
	return printJSON(c.App.Writer, out)
}

func summaryCommand(c *cli.Context) error {
	a, _, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	return printJSON(c.App.Writer, map[string]string{"summary": a.Summaries.Latest(ctx(c))})
}

func summariesCommand(c *cli.Context) error {
	a, _, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.Summaries.List(ctx(c))
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, presenter.ToSummaryListResponse(records))
}

func transcriptCommand(c *cli.Context) error {
	a, _, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	utterances, err := a.Transcripts.Load(ctx(c))
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, presenter.ToTranscriptResponse(utterances))
}

func archivedCommand(c *cli.Context) error {
	a, _, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Archive == nil {
		return fmt.Errorf("object storage is disabled; set STORAGE_ENABLED=true")
	}
	files, err := a.Archive.ListFiles(ctx(c), c.String("prefix"))
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, files)
}

func ctx(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
