// Package main is the Kuraberu CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/quotely/kuraberu/internal/catalog"
	"github.com/quotely/kuraberu/internal/cli"
	"github.com/quotely/kuraberu/internal/config"
	"github.com/quotely/kuraberu/internal/finder"
	"github.com/quotely/kuraberu/internal/models"
	"github.com/quotely/kuraberu/internal/server"
	"github.com/quotely/kuraberu/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/kuraberu/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "compare":
		runCompare()
	case "products":
		runProducts()
	case "version", "--version", "-v":
		fmt.Printf("kuraberu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: kuraberu <command> [flags]

Commands:
  server    Run the comparison HTTP API
  compare   Rank products for a customer profile
  products  List or search the product catalog
  version   Print the version

Run 'kuraberu <command> -h' for command flags.
`)
}

// engineFromConfig builds the shared scoring engine from config. Both the
// server and the compare command go through this so they always agree.
func engineFromConfig(cfg *config.Config) (*finder.Engine, error) {
	engineCfg := finder.DefaultConfig()
	switch strings.ToLower(cfg.Compare.OtherGenderColumn) {
	case "", "female":
		engineCfg.OtherGenderColumn = models.GenderFemale
	case "male":
		engineCfg.OtherGenderColumn = models.GenderMale
	default:
		return nil, fmt.Errorf("invalid other_gender_column %q (want female or male)", cfg.Compare.OtherGenderColumn)
	}
	return finder.NewEngine(engineCfg), nil
}

func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	source, err := catalog.NewSource(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(source, logger)
	if err := cat.Load(ctx); err != nil {
		return nil, err
	}
	return cat, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, err := engineFromConfig(cfg)
	if err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	index, err := catalog.NewIndex()
	if err != nil {
		logger.Fatal("failed to create search index", zap.Error(err))
	}
	if err := index.Rebuild(cat.Records()); err != nil {
		logger.Fatal("failed to build search index", zap.Error(err))
	}

	if cfg.Catalog.Watch {
		watcher := catalog.NewWatcher(cfg.Catalog.Path, func() {
			if err := cat.Load(ctx); err != nil {
				logger.Error("catalog reload failed", zap.Error(err))
				return
			}
			if err := index.Rebuild(cat.Records()); err != nil {
				logger.Error("index rebuild failed", zap.Error(err))
			}
		}, logger)
		go func() {
			if err := watcher.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("catalog watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := server.NewServer(engine, cat, index, cfg, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("server failed", zap.Error(err))
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}

func runCompare() {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	region := fs.String("region", "", "region (NSW, VIC, QLD, WA, SA, TAS)")
	gender := fs.String("gender", "", "gender (male, female, other)")
	age := fs.String("age", "", "age band (under_25, 25_39, 40_plus)")
	priority := fs.String("priority", "", "priority (price or features)")
	features := fs.String("features", "", "comma-separated priority features")
	sortBy := fs.String("sort", "", "sort key (finder_score or price_rating)")
	limit := fs.Int("limit", 0, "maximum products to show (0 = config default)")
	output := fs.String("output", "text", "output format (text or json)")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseOutputFormat(*output)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	criteria, err := buildCriteria(*region, *gender, *age, *priority, *features, *sortBy, *limit)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	engine, err := engineFromConfig(cfg)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	cat, err := loadCatalog(ctx, cfg, zap.NewNop())
	if err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	products := engine.Compare(cat.Records(), criteria)
	if criteria.SortBy == "" && cfg.Compare.DefaultSort == config.SortSponsoredFirst {
		finder.SortSponsoredFirst(products)
	}
	total := len(products)
	max := criteria.Limit
	if max <= 0 {
		max = cfg.Compare.MaxResults
	}
	products = finder.TopN(products, max)

	response := &models.CompareResponse{
		Products:  products,
		Total:     total,
		QueryTime: time.Since(start).Milliseconds(),
		Criteria:  criteria,
	}
	if err := cli.WriteCompareResults(os.Stdout, response, format); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
}

// buildCriteria assembles and validates customer criteria from flag values.
func buildCriteria(region, gender, age, priority, features, sortBy string, limit int) (models.Criteria, error) {
	criteria := models.Criteria{
		Region:   models.Region(region),
		Gender:   models.Gender(gender),
		AgeBand:  models.AgeBand(age),
		Priority: models.Priority(priority),
		SortBy:   models.SortKey(sortBy),
		Limit:    limit,
	}
	if features != "" {
		names := strings.Split(features, ",")
		set, err := models.ParseFeatureSet(names)
		if err != nil {
			return models.Criteria{}, err
		}
		criteria.Features = set
	}
	if err := criteria.Validate(); err != nil {
		return models.Criteria{}, err
	}
	return criteria, nil
}

func runProducts() {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	query := fs.String("q", "", "search product names and providers")
	limit := fs.Int("limit", 0, "maximum products to show (0 = all)")
	output := fs.String("output", "text", "output format (text or json)")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseOutputFormat(*output)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	cat, err := loadCatalog(ctx, cfg, zap.NewNop())
	if err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	records := cat.Records()
	if *query != "" {
		index, err := catalog.NewIndex()
		if err == nil {
			err = index.Rebuild(records)
		}
		if err != nil {
			fmt.Printf("Failed to build search index: %v\n", err)
			os.Exit(1)
		}
		ids, err := index.Search(*query, *limit)
		if err != nil {
			fmt.Printf("Search failed: %v\n", err)
			os.Exit(1)
		}
		matched := make([]models.Record, 0, len(ids))
		for _, id := range ids {
			if rec := cat.Find(id); rec != nil {
				matched = append(matched, rec)
			}
		}
		records = matched
	} else if *limit > 0 && *limit < len(records) {
		records = records[:*limit]
	}

	if err := cli.WriteProductList(os.Stdout, records, format); err != nil {
		fmt.Printf("Failed to write products: %v\n", err)
		os.Exit(1)
	}
}
