// Command qualitycli runs the quality-assessment pipeline over an artifact
// collection and prints a summary of its maturity, coherence, and health
// results.
//
// Optional environment variables:
//
//	QUALITYCLI_CONFIG     - path to a TOML config file
//	QUALITYCLI_LOG_LEVEL  - log level: debug, info, warn, error (default: info)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artifactqa/quality-assessment/internal/config"
	"github.com/artifactqa/quality-assessment/internal/loadreport"
	"github.com/artifactqa/quality-assessment/internal/model"
	"github.com/artifactqa/quality-assessment/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable core of main: it takes its args and output streams
// explicitly rather than reading the process globals directly, and returns
// the process exit code instead of calling os.Exit itself.
func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("qualitycli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "path to the artifact collection to load (passed to the configured Loader)")
	configPath := fs.String("config", "", "path to a TOML config file")
	export := fs.String("export", "", "export format (no Exporter ships with this module; set only if one has been wired in)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "qualitycli: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	var loader loadreport.Loader
	empty, err := model.NewCollection(nil, nil, nil, nil, nil, nil)
	if err != nil {
		logger.Error("building empty collection", "error", err)
		return 1
	}
	loader = loadreport.NewStatic(empty)

	code, err := runPipeline(context.Background(), loader, *input, *export, cfg, logger, stdout)
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		return 1
	}
	return code
}

// runPipeline loads the collection, runs the pipeline, prints the health
// summary, and returns the §6.2 exit code: 0 when health is at least 75, 0
// with a warning when it's between 40 and 75, and 1 when it's below 40.
func runPipeline(ctx context.Context, loader loadreport.Loader, input, export string, cfg *config.Config, logger *slog.Logger, stdout *os.File) (int, error) {
	collection, err := loader.Load(ctx, input)
	if err != nil {
		return 1, fmt.Errorf("loading collection: %w", err)
	}

	now := time.Now()
	opts := pipeline.Options{
		SnapshotID: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()),
		Timestamp:  now,
		Context:    cfg.ProjectContext(),
	}
	result := pipeline.Run(collection, opts)

	fmt.Fprintf(stdout, "maturity level: %d\n", result.Maturity.ProjectLevel)
	fmt.Fprintf(stdout, "health score: %.1f (%s)\n", result.Health.Overall, result.Health.Level)
	fmt.Fprintf(stdout, "recommendations: %d (%d critical, %d high)\n",
		result.Recommendations.Summary.Total, result.Recommendations.Summary.Critical, result.Recommendations.Summary.High)
	fmt.Fprintf(stdout, "coherence issues: %d\n", result.Coherence.TotalIssues)

	if export != "" {
		logger.Warn("export requested but no Exporter is wired into this build", "format", export)
	}

	switch {
	case result.Health.Overall >= 75:
		return 0, nil
	case result.Health.Overall >= 40:
		fmt.Fprintln(stdout, "warning: project health is fair or poor")
		return 0, nil
	default:
		return 1, nil
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
