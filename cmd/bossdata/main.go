package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/config"
	"github.com/Mizuchii42/monster-toram/internal/loader"
	"github.com/Mizuchii42/monster-toram/internal/logging"
	"github.com/Mizuchii42/monster-toram/internal/query"
	"github.com/Mizuchii42/monster-toram/internal/storage"
	bosserr "github.com/Mizuchii42/monster-toram/pkg/errors"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: bossdata <command> [options]")
		fmt.Println("Commands: group, query, load")
		os.Exit(1)
	}

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}
	cfg := config.LoadConfig()

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "group":
		err = handleGroup(cfg, logger, os.Args[2:])
	case "query":
		err = handleQuery(cfg, logger, os.Args[2:])
	case "load":
		err = handleLoad(cfg, logger, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if code := bosserr.CodeOf(err); code != "" {
			fields = append(fields, zap.String("code", code))
		}
		logger.Error("Command failed", fields...)
		_ = logger.Sync()
		os.Exit(bosserr.ExitCode(err))
	}
	_ = logger.Sync()
}

func handleGroup(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("group", flag.ExitOnError)
	inputPtr := fs.String("input", cfg.InputPath, "Flat boss records (JSON array)")
	outputPtr := fs.String("output", cfg.OutputPath, "Destination for grouped records")
	formatPtr := fs.String("format", cfg.Format, "Output format: json or jsonl")

	fs.Parse(args)

	format, err := storage.ParseFormat(*formatPtr)
	if err != nil {
		return err
	}

	stats, err := groupFile(*inputPtr, *outputPtr, format)
	if err != nil {
		return err
	}

	logger.Info("Grouped boss records",
		zap.String("input", *inputPtr),
		zap.String("output", *outputPtr),
		zap.Int("records", stats.Records),
		zap.Int("bosses", stats.Bosses),
	)
	fmt.Printf("Transformation succeeded. Data saved to '%s'.\n", *outputPtr)
	return nil
}

func handleQuery(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	typePtr := fs.String("type", "", "Query type: search, element, level, stats")
	targetPtr := fs.String("target", "", "Name or element to look for")
	minPtr := fs.Float64("min", 0, "Lowest level for 'level'")
	maxPtr := fs.Float64("max", math.Inf(1), "Highest level for 'level'")
	inputPtr := fs.String("input", cfg.OutputPath, "Grouped boss file (ignored with -source neo4j)")
	sourcePtr := fs.String("source", "file", "Data source: file or neo4j")

	fs.Parse(args)

	var provider query.Provider
	switch *sourcePtr {
	case "file":
		groups, err := storage.LoadGroupedFile(*inputPtr)
		if err != nil {
			return err
		}
		provider = query.NewMemoryProvider(groups)
	case "neo4j":
		if cfg.Neo4jURI == "" {
			return errors.New("NEO4J_URI environment variable is not set")
		}
		p, err := query.NewNeo4jProvider(cfg)
		if err != nil {
			return err
		}
		provider = p
	default:
		return fmt.Errorf("unknown source %q (want file or neo4j)", *sourcePtr)
	}
	defer provider.Close()

	result, err := runQuery(provider, *typePtr, *targetPtr, *minPtr, *maxPtr)
	if err != nil {
		return err
	}
	logger.Debug("Query finished", zap.String("type", *typePtr), zap.String("source", *sourcePtr))

	if err := storage.WriteJSON(os.Stdout, result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println()
	return nil
}

func handleLoad(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	inputPtr := fs.String("input", cfg.OutputPath, "Grouped boss file to load")
	wipePtr := fs.Bool("wipe", false, "Delete existing Boss and StatDef nodes first")

	fs.Parse(args)

	if cfg.Neo4jURI == "" {
		return errors.New("NEO4J_URI environment variable is not set")
	}

	groups, err := storage.LoadGroupedFile(*inputPtr)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("failed to verify connectivity to neo4j: %w", err)
	}

	l := loader.NewNeo4jLoader(driver, cfg.Neo4jDatabase, logger)
	return l.Load(ctx, groups, *wipePtr)
}

// groupStats describes one group run.
type groupStats struct {
	Records int
	Bosses  int
}

// groupFile reads flat records from input, groups them and writes the result
// to output. Nothing is written unless reading and grouping succeed.
func groupFile(input, output string, format storage.Format) (groupStats, error) {
	records, err := storage.LoadFile(input)
	if err != nil {
		return groupStats{}, err
	}

	groups := boss.Transform(records)

	if err := storage.SaveFile(output, groups, format); err != nil {
		return groupStats{}, err
	}
	return groupStats{Records: len(records), Bosses: len(groups)}, nil
}

func runQuery(p query.Provider, kind, target string, min, max float64) (any, error) {
	switch kind {
	case "search":
		if target == "" {
			return nil, errors.New("-target is required for 'search'")
		}
		return p.SearchByName(target)
	case "element":
		if target == "" {
			return nil, errors.New("-target is required for 'element'")
		}
		return p.ByElement(target)
	case "level":
		if min > max {
			return nil, fmt.Errorf("-min %g is greater than -max %g", min, max)
		}
		return p.ByLevelRange(min, max)
	case "stats":
		return p.Summarize()
	default:
		return nil, fmt.Errorf("unknown or missing query type: %q. Valid types: search, element, level, stats", kind)
	}
}
