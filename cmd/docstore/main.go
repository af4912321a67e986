// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingest"
	"github.com/urfave/cli/v2"
)

// Built-in sample rows used when no --src file is given.
var sampleRecords = []ingest.Record{
	{
		Title:   "Project overview",
		Content: "The project improves how small teams share notes.",
		Author:  core.Author{Id: "customer", Name: "Customer"},
		Created: time.Now().Add(-4 * 7 * 24 * time.Hour),
	},
	{
		Title:   "Technical assignment",
		Content: "Develop the project as a self-contained library.",
		Author:  core.Author{Id: "customer", Name: "Customer"},
		Created: time.Now().Add(-3 * 7 * 24 * time.Hour),
	},
	{
		Title:   "Project execution plan",
		Content: "Mockups one week, features four weeks, testing two weeks.",
		Author:  core.Author{Id: "team-lead", Name: "Team lead"},
		Created: time.Now().Add(-2 * 7 * 24 * time.Hour),
	},
	{
		Title:   "Feature description #1",
		Content: "Performs a lot of useful work.",
		Author:  core.Author{Id: "developer", Name: "Developer"},
		Created: time.Now().Add(-7 * 24 * time.Hour),
	},
	{
		Title:   "Feature description #2",
		Content: "Performs a lot of useful work.",
		Author:  core.Author{Id: "developer", Name: "Developer"},
		Created: time.Now(),
	},
}

func main() {
	app := &cli.App{
		Name:  "docstore",
		Usage: "In-memory document repository with filtered search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "src",
				Usage: "File of documents to load, one 'title|content|author-id|author-name' row per line",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Load documents and print them all",
				Action: listCommand,
			},
			{
				Name:   "search",
				Usage:  "Load documents and run a filtered search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "title-prefix",
						Usage: "Keep documents whose title starts with any given prefix (case-sensitive)",
					},
					&cli.StringSliceFlag{
						Name:  "contains",
						Usage: "Keep documents whose content contains any given string (case-insensitive)",
					},
					&cli.StringSliceFlag{
						Name:  "author",
						Usage: "Keep documents written by any given author id",
					},
					&cli.TimestampFlag{
						Name:   "created-from",
						Usage:  "Keep documents created strictly after this time (RFC 3339)",
						Layout: time.RFC3339,
					},
					&cli.TimestampFlag{
						Name:   "created-to",
						Usage:  "Keep documents created strictly before this time (RFC 3339)",
						Layout: time.RFC3339,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// newLoadedManager creates a manager and loads it with the sample rows or
// the rows from the --src file.
func newLoadedManager(c *cli.Context) (*docstore.Manager, error) {
	manager, err := docstore.NewManager()
	if err != nil {
		return nil, err
	}

	records := sampleRecords
	if src := c.String("src"); src != "" {
		records, err = recordsFromFile(src)
		if err != nil {
			manager.Close()
			return nil, err
		}
	}

	pipeline, err := manager.NewIngestionPipeline()
	if err != nil {
		manager.Close()
		return nil, err
	}
	defer pipeline.Release()

	if err := pipeline.Ingest(c.Context, records...); err != nil {
		manager.Close()
		return nil, err
	}
	pipeline.Wait()

	return manager, nil
}

// recordsFromFile parses 'title|content|author-id|author-name' rows.
// Blank lines and lines starting with '#' are skipped.
func recordsFromFile(filename string) ([]ingest.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []ingest.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, "|", 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed row %q: want 'title|content|author-id|author-name'", line)
		}

		records = append(records, ingest.Record{
			Title:   fields[0],
			Content: fields[1],
			Author:  core.Author{Id: fields[2], Name: fields[3]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func listCommand(c *cli.Context) error {
	manager, err := newLoadedManager(c)
	if err != nil {
		return err
	}
	defer manager.Close()

	documents, err := manager.Documents().ListDocuments(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("Stored %d documents\n", len(documents))
	printDocuments(documents)
	return nil
}

func searchCommand(c *cli.Context) error {
	manager, err := newLoadedManager(c)
	if err != nil {
		return err
	}
	defer manager.Close()

	request := &core.SearchRequest{
		TitlePrefixes:    c.StringSlice("title-prefix"),
		ContainsContents: c.StringSlice("contains"),
		AuthorIds:        c.StringSlice("author"),
		CreatedFrom:      c.Timestamp("created-from"),
		CreatedTo:        c.Timestamp("created-to"),
	}

	results, err := manager.Search(c.Context, request)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	printDocuments(results)
	return nil
}

func printDocuments(documents []*core.Document) {
	for i, document := range documents {
		fmt.Printf("%d: '%s' by %s (%s) [%s]\n",
			i, document.Title, document.Author.Name, document.Author.Id,
			document.Created.Format(time.RFC3339))
	}
}
