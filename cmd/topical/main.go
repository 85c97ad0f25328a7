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
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	topical "github.com/poiesic/topical"
	"github.com/poiesic/topical/config"
)

func main() {
	app := &cli.App{
		Name:  "topical",
		Usage: "Incremental topical article ingestion into a vector index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Execute one ingestion run over the configured feeds",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to YAML run configuration",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "added-file",
						Usage: "Write the list of newly added articles to this file",
					},
				},
			},
			{
				Name:   "migrate",
				Usage:  "Import a legacy JSON article file into the registry",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "registry",
						Aliases:  []string{"r"},
						Usage:    "Path to BadgerDB registry directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from",
						Aliases:  []string{"f"},
						Usage:    "Path to the legacy articles JSON file",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	system, err := topical.NewSystem(ctx, cfg)
	if err != nil {
		return err
	}
	defer system.Close()

	pipeline, err := system.NewPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingestion run failed: %w", err)
	}

	printSummary(summary)

	if path := c.String("added-file"); path != "" {
		if err := writeAddedFile(path, summary); err != nil {
			return fmt.Errorf("writing added file: %w", err)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
