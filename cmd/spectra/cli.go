package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/knagasaki/spectra/internal/config"
	"github.com/knagasaki/spectra/internal/errors"
	"github.com/knagasaki/spectra/internal/logger"
	"github.com/knagasaki/spectra/internal/observability"
	"github.com/knagasaki/spectra/internal/ops"
	"github.com/knagasaki/spectra/internal/photo"
	"github.com/knagasaki/spectra/internal/store"
	"github.com/knagasaki/spectra/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(s *store.Store, cfg *config.Config, photos *photo.Dir) *cli.App {
	app := &cli.App{
		Name:    "spectra",
		Usage:   "Field observation spectrum logger",
		Version: Version,
		Commands: []*cli.Command{
			recordCmd(s, cfg, photos),
			listCmd(s, cfg),
			showCmd(s, cfg),
			analyzeCmd(s, cfg),
			sitesCmd(cfg),
			geojsonCmd(s, cfg),
			serveCmd(s, cfg, photos),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// recordCmd creates the record command.
func recordCmd(s *store.Store, cfg *config.Config, photos *photo.Dir) *cli.Command {
	return &cli.Command{
		Name:  "record",
		Usage: "Record an observation (a markdown note may be piped via stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Location label"},
			&cli.StringFlag{Name: "site", Aliases: []string{"s"}, Usage: "Preset site name (fills location and coordinates)"},
			&cli.Float64Flag{Name: "lat", Usage: "Latitude in decimal degrees"},
			&cli.Float64Flag{Name: "lon", Usage: "Longitude in decimal degrees"},
			&cli.Float64Flag{Name: "hard-auth", Usage: "Hard-axis authenticity score"},
			&cli.Float64Flag{Name: "hard-emotion", Usage: "Hard-axis emotional affect score"},
			&cli.Float64Flag{Name: "soft-auth", Usage: "Soft-axis authenticity score"},
			&cli.Float64Flag{Name: "soft-emotion", Usage: "Soft-axis emotional affect score"},
			&cli.StringFlag{Name: "note", Usage: "Markdown note (overridden by piped stdin)"},
			&cli.StringFlag{Name: "photo", Usage: "Path to a photo file to attach"},
		},
		Action: func(c *cli.Context) error {
			input := ops.RecordInput{
				Location:         c.String("location"),
				Site:             c.String("site"),
				HardAuthenticity: c.Float64("hard-auth"),
				HardEmotion:      c.Float64("hard-emotion"),
				SoftAuthenticity: c.Float64("soft-auth"),
				SoftEmotion:      c.Float64("soft-emotion"),
				Note:             c.String("note"),
			}

			if c.IsSet("lat") {
				lat := c.Float64("lat")
				input.Latitude = &lat
			}
			if c.IsSet("lon") {
				lon := c.Float64("lon")
				input.Longitude = &lon
			}

			if stdinHasData() {
				note, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				if note != "" {
					input.Note = note
				}
			}

			if path := c.String("photo"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return outputError(errors.NewInvalidRequest("could not read photo: " + err.Error()))
				}
				ref, err := photos.Store(data, filepath.Ext(path))
				if err != nil {
					return outputError(err)
				}
				input.PhotoRef = ref
			}

			output, err := ops.Record(s, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List observations in insertion order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Filter by location label"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum observations to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(s, cfg, ops.ListInput{
				Location: c.String("location"),
				Limit:    c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one observation with its displacement vector",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("observation ID is required"))
			}

			output, err := ops.Fetch(s, cfg, c.Args().First())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Compute aggregate displacement statistics",
		Action: func(c *cli.Context) error {
			output, err := ops.Analyze(s, cfg)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// sitesCmd creates the sites command.
func sitesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "sites",
		Usage: "List preset sites from the configuration",
		Action: func(c *cli.Context) error {
			return outputJSON(ops.Sites(cfg))
		},
	}
}

// geojsonCmd creates the geojson command.
func geojsonCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "geojson",
		Usage: "Export all observations as a GeoJSON FeatureCollection",
		Action: func(c *cli.Context) error {
			return outputJSON(ops.ExportGeoJSON(s, cfg))
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(s *store.Store, cfg *config.Config, photos *photo.Dir) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web UI and JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8414, Usage: "Listen port"},
			&cli.BoolFlag{Name: "json-logs", Usage: "Emit JSON logs instead of pretty output"},
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		},
		Action: func(c *cli.Context) error {
			log := logger.New(
				logger.WithDebug(c.Bool("debug")),
				logger.WithJSON(c.Bool("json-logs")),
				logger.WithPretty(!c.Bool("json-logs")),
			)

			metrics := observability.NewMetrics()
			metrics.StoreSize.Set(float64(s.Len()))

			srv := web.NewServer(s, cfg, photos, metrics, log, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv, log)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SpectraError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
