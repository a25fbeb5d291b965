package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aiwolfie/waybackwolf/internal/analyzer"
	"github.com/aiwolfie/waybackwolf/internal/archive"
	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/aiwolfie/waybackwolf/internal/datastore"
	"github.com/aiwolfie/waybackwolf/internal/extractor"
	"github.com/aiwolfie/waybackwolf/internal/fetcher"
	"github.com/aiwolfie/waybackwolf/internal/httpclient"
	"github.com/aiwolfie/waybackwolf/internal/limiter"
	"github.com/aiwolfie/waybackwolf/internal/logger"
	"github.com/aiwolfie/waybackwolf/internal/orchestrator"
	"github.com/aiwolfie/waybackwolf/internal/prober"
	"github.com/aiwolfie/waybackwolf/internal/reporter"
	"github.com/aiwolfie/waybackwolf/internal/urlhandler"
	"github.com/rs/zerolog"
)

func main() {
	flags := parseFlags()

	cfg, err := config.LoadGlobalConfig(flags.configFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.configFile, err)
	}
	flags.apply(cfg)

	if cfg.InputFile == "" {
		log.Fatalln("[FATAL] -file argument is required")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := run(cfg, zLogger); err != nil {
		zLogger.Fatal().Err(err).Msg("Run failed")
	}
}

func run(cfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	urls, err := urlhandler.ReadURLsFromFile(cfg.InputFile, zLogger)
	if err != nil {
		return err
	}
	if cfg.DomainFilter != "" {
		urls = urlhandler.FilterByDomain(urls, cfg.DomainFilter)
	}
	if len(urls) == 0 {
		fmt.Println("No URLs found matching criteria")
		return nil
	}

	rep := reporter.New(cfg.ReporterConfig, os.Stdout, zLogger)
	rep.PrintExtensionBreakdown(urlhandler.CountExtensions(urls))

	pools := limiter.ComputePoolSizes(cfg.LimiterConfig, zLogger)
	zLogger.Info().
		Int("probe_workers", pools.Probe).
		Int("archive_workers", pools.Archive).
		Msg("Adjusted worker pools based on system resources")

	client := httpclient.NewClient(cfg.HTTPClientConfig)
	probeGate := limiter.NewGate(pools.Probe)
	archiveGate := limiter.NewGate(pools.Archive)

	cache, err := datastore.NewContentCache(cfg.StorageConfig.ContentCachePath, zLogger)
	if err != nil {
		return err
	}
	defer cache.Close()

	p := prober.New(client, proberPolicy(cfg.ProberConfig), probeGate, zLogger)
	resolver := archive.NewResolver(cfg.ArchiveConfig, client, archiveGate, zLogger)
	fetch := fetcher.New(client, cache, probeGate, zLogger)

	orch := orchestrator.New(
		p, resolver, fetch,
		buildRouter(cfg.AnalysisConfig, client, zLogger),
		cfg.AnalysisConfig.Extensions,
		zLogger,
	)

	var results *orchestrator.Results
	if cfg.Interactive {
		commands := make(chan orchestrator.Command)
		go readCommands(os.Stdin, commands)
		results = orch.RunInteractive(ctx, urls, commands)
	} else {
		results = orch.RunBatch(ctx, urls)
	}

	rep.Report(results.Accessible, results.Inaccessible, results.Stats)
	return nil
}

func proberPolicy(cfg config.ProberConfig) httpclient.RetryPolicy {
	return httpclient.FixedDelay(cfg.MaxAttempts, time.Duration(cfg.RetryDelaySecs)*time.Second)
}

// buildRouter assembles the analysis chain, or nil when analysis is
// disabled. API keys fall back to the environment so they never have to live
// in the config file.
func buildRouter(cfg config.AnalysisConfig, client *http.Client, zLogger zerolog.Logger) *analyzer.Router {
	if cfg.Backend == "" {
		return nil
	}

	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.GrokAPIKey == "" {
		cfg.GrokAPIKey = os.Getenv("GROK_API_KEY")
	}

	return analyzer.NewRouter(
		analyzer.BuildChain(cfg, client),
		extractor.NewDefaultExtractor(zLogger),
		limiter.NewGate(1),
		cfg.TruncateChars,
		zLogger,
	)
}

// readCommands translates operator keystrokes into pipeline commands:
// p pauses, s skips, q quits, anything else proceeds. EOF closes the
// channel, which the orchestrator treats as quit.
func readCommands(in *os.File, commands chan<- orchestrator.Command) {
	defer close(commands)

	fmt.Println("Interactive mode: [Enter]=proceed  s=skip  p=pause  q=quit")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "q":
			commands <- orchestrator.Quit
			return
		case "s":
			commands <- orchestrator.Skip
		case "p":
			commands <- orchestrator.Pause
		default:
			commands <- orchestrator.Proceed
		}
	}
}
