package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/aumai/kisanmitra/internal"
	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/feed"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/mcpserver"
	"github.com/aumai/kisanmitra/internal/models"
	"github.com/aumai/kisanmitra/internal/pests"
	pkgconfig "github.com/aumai/kisanmitra/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// runMCP serves the advisory tools over stdio for LLM hosts. Logs go to
// stderr so stdout stays clean for the MCP transport.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	store, err := internal.NewStore(cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer store.Close()

	loader := feed.NewLoader(store, logger)
	if _, err := loader.LoadDir(cfg.Feed.Dir); err != nil {
		logger.Warn("feed load failed", slog.String("error", err.Error()))
	}

	srv := mcpserver.New(store, pests.NewCatalog(), advisory.NewRouter(nil))
	return srv.ServeStdio()
}

// loadLocalStore builds a store from the configured feed directory for the
// one-shot query commands.
func loadLocalStore(cmd *cli.Command) (market.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store := market.NewMemoryStore()
	loader := feed.NewLoader(store, logger)
	if _, err := loader.LoadDir(cfg.Feed.Dir); err != nil {
		return nil, fmt.Errorf("load feed dir: %w", err)
	}
	return store, nil
}

func printPrices(records []models.PriceRecord) {
	fmt.Printf("%-20s %-15s %8s %8s %8s %-12s\n", "Market", "State", "Min", "Max", "Modal", "Date")
	fmt.Println(strings.Repeat("-", 75))
	for _, p := range records {
		fmt.Printf("%-20s %-15s %8.0f %8.0f %8.0f %-12s\n",
			p.Market, p.State, p.MinPrice, p.MaxPrice, p.ModalPrice, p.Date)
	}
	fmt.Println("\n(Prices in INR per quintal)")
	fmt.Println("\n" + models.Disclaimer)
}

func runPrices(ctx context.Context, cmd *cli.Command) error {
	store, err := loadLocalStore(cmd)
	if err != nil {
		return err
	}
	commodity := cmd.String("commodity")
	state := cmd.String("state")

	records, err := store.Query(commodity, state)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No price data found for commodity %q", commodity)
		if state != "" {
			fmt.Printf(" in state %q", state)
		}
		fmt.Println(".")
		return nil
	}

	fmt.Printf("\nMANDI PRICES: %s", strings.ToUpper(commodity))
	if state != "" {
		fmt.Printf(" | State: %s", state)
	}
	fmt.Println()
	printPrices(records)
	return nil
}

func runTrend(ctx context.Context, cmd *cli.Command) error {
	store, err := loadLocalStore(cmd)
	if err != nil {
		return err
	}
	commodity := cmd.String("commodity")
	mkt := cmd.String("market")

	records, err := store.Trend(commodity, mkt)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No price data found for commodity %q at market %q.\n", commodity, mkt)
		return nil
	}

	fmt.Printf("\nPRICE TREND: %s at %s\n", strings.ToUpper(commodity), mkt)
	printPrices(records)
	return nil
}

func runPest(ctx context.Context, cmd *cli.Command) error {
	catalog := pests.NewCatalog()

	var symptoms []string
	for _, s := range strings.Split(cmd.String("symptoms"), ",") {
		if v := strings.TrimSpace(s); v != "" {
			symptoms = append(symptoms, v)
		}
	}

	var results []models.Pest
	if crop := cmd.String("crop"); crop != "" {
		// Narrow identification to pests of the crop; fall back to the
		// full crop list when the symptoms match none of them.
		candidates := make(map[string]bool)
		for _, p := range catalog.ByCrop(crop) {
			candidates[p.Name] = true
		}
		for _, p := range catalog.Identify(symptoms) {
			if candidates[p.Name] {
				results = append(results, p)
			}
		}
		if len(results) == 0 {
			results = catalog.ByCrop(crop)
		}
	} else {
		results = catalog.Identify(symptoms)
	}

	if len(results) == 0 {
		fmt.Println("No matching pests found. Try different symptom keywords.")
		fmt.Println("Common symptoms: yellowing, wilting, spots, holes, rotting, stunted growth")
		return nil
	}

	fmt.Printf("\nPEST IDENTIFICATION RESULTS (%d match(es)):\n", len(results))
	shown := results
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for i, p := range shown {
		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Printf("%d. %s\n", i+1, p.Name)
		fmt.Printf("   Affected Crops: %s\n", strings.Join(p.AffectedCrops, ", "))
		fmt.Printf("   Symptoms: %s\n", strings.Join(p.Symptoms, "; "))
		fmt.Println("   Treatment:")
		for _, t := range p.Treatment {
			fmt.Printf("     - %s\n", t)
		}
		fmt.Println("   Prevention:")
		for _, pr := range p.Prevention {
			fmt.Printf("     - %s\n", pr)
		}
	}
	fmt.Println("\n" + models.Disclaimer)
	return nil
}

func runAsk(ctx context.Context, cmd *cli.Command) error {
	router := advisory.NewRouter(nil)
	resp := router.Respond(models.Query{
		Text:     cmd.String("query"),
		Language: cmd.String("language"),
		Location: cmd.String("location"),
	})

	fmt.Println("\nADVISORY RESPONSE:")
	fmt.Println(resp.Answer)
	if len(resp.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, s := range resp.Sources {
			fmt.Printf("  - %s\n", s)
		}
	}
	fmt.Println("\n" + resp.Disclaimer)
	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:  "kisanmitra",
		Usage: "Farmer advisory service: mandi prices, pest identification, and rule-based advice",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server with feed watcher and optional Telegram bridge",
				Action: runServe,
			},
			{
				Name:   "mcp",
				Usage:  "Serve advisory tools over MCP stdio transport",
				Action: runMCP,
			},
			{
				Name:   "prices",
				Usage:  "Show mandi prices for a commodity from the feed directory",
				Action: runPrices,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "commodity", Usage: "Commodity name (e.g. rice, wheat)", Required: true},
					&cli.StringFlag{Name: "state", Usage: "Filter by state name (e.g. UP, Maharashtra)"},
				},
			},
			{
				Name:   "trend",
				Usage:  "Show the chronological price trend for a commodity at one mandi",
				Action: runTrend,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "commodity", Usage: "Commodity name", Required: true},
					&cli.StringFlag{Name: "market", Usage: "Mandi/market name", Required: true},
				},
			},
			{
				Name:   "pest",
				Usage:  "Identify pests based on observed symptoms",
				Action: runPest,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "symptoms", Usage: "Comma-separated symptoms (e.g. 'yellowing,wilting')", Required: true},
					&cli.StringFlag{Name: "crop", Usage: "Crop name to narrow results"},
				},
			},
			{
				Name:   "ask",
				Usage:  "Ask a farming question and get an advisory response",
				Action: runAsk,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "query", Usage: "Your farming question", Required: true},
					&cli.StringFlag{Name: "location", Usage: "Your location for context"},
					&cli.StringFlag{Name: "language", Usage: "Language code", Value: "en"},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
