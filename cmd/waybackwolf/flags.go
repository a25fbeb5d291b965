package main

import (
	"flag"
	"strings"

	"github.com/aiwolfie/waybackwolf/internal/config"
)

// cliFlags carries the parsed command line. Every option has a config-file
// counterpart; a flag that was set wins over the file value.
type cliFlags struct {
	inputFile      string
	configFile     string
	textOutput     string
	jsonOutput     string
	domain         string
	workers        int
	archiveWorkers int
	aiBackend      string
	aiExtensions   string
	interactive    bool
	connectTimeout int
	readTimeout    int
}

func parseFlags() *cliFlags {
	inputFile := flag.String("file", "", "Path to a text file containing URLs to audit, one per line.")
	inputFileAlias := flag.String("f", "", "Alias for -file")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	textOutput := flag.String("output", "", "Write the plain-text result listing to this file.")
	textOutputAlias := flag.String("o", "", "Alias for -output")

	jsonOutput := flag.String("json", "", "Write the JSON result document to this file.")
	jsonOutputAlias := flag.String("j", "", "Alias for -json")

	domain := flag.String("domain", "", "Only audit URLs on this domain or its subdomains.")
	domainAlias := flag.String("d", "", "Alias for -domain")

	workers := flag.Int("workers", 0, "Maximum concurrent URL probes (upper bound; effective size adapts to system capacity).")
	workersAlias := flag.Int("w", 0, "Alias for -workers")

	archiveWorkers := flag.Int("archive-workers", 0, "Maximum concurrent archive lookups.")
	archiveWorkersAlias := flag.Int("aw", 0, "Alias for -archive-workers")

	aiBackend := flag.String("ai", "", "AI analysis backend: openai, grok or ollama. Empty disables analysis.")
	aiExtensions := flag.String("extensions", "", "Comma-separated extensions eligible for AI analysis, e.g. sql,json,txt.")

	interactive := flag.Bool("interactive", false, "Confirm each URL before processing it.")
	interactiveAlias := flag.Bool("i", false, "Alias for -interactive")

	connectTimeout := flag.Int("connect-timeout", 0, "Connection timeout in seconds.")
	readTimeout := flag.Int("read-timeout", 0, "Response read timeout in seconds.")

	flag.Parse()

	// Consolidate alias flags
	if *inputFile == "" && *inputFileAlias != "" {
		*inputFile = *inputFileAlias
	}
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}
	if *textOutput == "" && *textOutputAlias != "" {
		*textOutput = *textOutputAlias
	}
	if *jsonOutput == "" && *jsonOutputAlias != "" {
		*jsonOutput = *jsonOutputAlias
	}
	if *domain == "" && *domainAlias != "" {
		*domain = *domainAlias
	}
	if *workers == 0 && *workersAlias != 0 {
		*workers = *workersAlias
	}
	if *archiveWorkers == 0 && *archiveWorkersAlias != 0 {
		*archiveWorkers = *archiveWorkersAlias
	}
	if !*interactive && *interactiveAlias {
		*interactive = true
	}

	return &cliFlags{
		inputFile:      *inputFile,
		configFile:     *configFile,
		textOutput:     *textOutput,
		jsonOutput:     *jsonOutput,
		domain:         *domain,
		workers:        *workers,
		archiveWorkers: *archiveWorkers,
		aiBackend:      *aiBackend,
		aiExtensions:   *aiExtensions,
		interactive:    *interactive,
		connectTimeout: *connectTimeout,
		readTimeout:    *readTimeout,
	}
}

// apply overlays the set flags onto the loaded configuration.
func (f *cliFlags) apply(cfg *config.GlobalConfig) {
	if f.inputFile != "" {
		cfg.InputFile = f.inputFile
	}
	if f.textOutput != "" {
		cfg.ReporterConfig.TextOutputFile = f.textOutput
	}
	if f.jsonOutput != "" {
		cfg.ReporterConfig.JSONOutputFile = f.jsonOutput
	}
	if f.domain != "" {
		cfg.DomainFilter = f.domain
	}
	if f.workers > 0 {
		cfg.LimiterConfig.MaxProbeWorkers = f.workers
	}
	if f.archiveWorkers > 0 {
		cfg.LimiterConfig.MaxArchiveWorkers = f.archiveWorkers
	}
	if f.aiBackend != "" {
		cfg.AnalysisConfig.Backend = f.aiBackend
	}
	if f.aiExtensions != "" {
		cfg.AnalysisConfig.Extensions = splitExtensions(f.aiExtensions)
	}
	if f.interactive {
		cfg.Interactive = true
	}
	if f.connectTimeout > 0 {
		cfg.HTTPClientConfig.ConnectTimeoutSecs = f.connectTimeout
	}
	if f.readTimeout > 0 {
		cfg.HTTPClientConfig.ReadTimeoutSecs = f.readTimeout
	}
}

func splitExtensions(list string) []string {
	var exts []string
	for _, part := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			exts = append(exts, trimmed)
		}
	}
	return exts
}
