// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/term"

	"adverse-screen/internal/config"
	"adverse-screen/internal/formatters"
	"adverse-screen/internal/llm"
	"adverse-screen/internal/observability"
	"adverse-screen/internal/screen"
	"adverse-screen/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile       string
	profile          string
	outputFormat     string
	confidenceLevels string
	outputFile       string
	model            string
	apiKey           string
	verbose          bool
	debug            bool
	noColor          bool
	fallbackOnly     bool
	showVersion      bool
}

func parseFlags() (*configFlags, []string) {
	flags := &configFlags{}

	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&flags.profile, "profile", "", "Configuration profile to apply")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format (text, json)")
	flag.StringVar(&flags.confidenceLevels, "confidence", "", "Entity confidence levels to display (all or comma-separated high,medium,low)")
	flag.StringVar(&flags.outputFile, "output", "", "Write the report to a file instead of stdout")
	flag.StringVar(&flags.model, "model", "", "Chat model used for judgment and translation")
	flag.StringVar(&flags.apiKey, "api-key", "", "API key (overrides the configured environment variable)")
	flag.BoolVar(&flags.verbose, "verbose", false, "Include detected entities in the output")
	flag.BoolVar(&flags.debug, "debug", false, "Emit operation records to stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.fallbackOnly, "fallback-only", false, "Skip the LLM and use only the rule-based decision path")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <article-file> <target-name>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Screens a news article for adverse media mentions of the target individual.\n")
		fmt.Fprintf(os.Stderr, "Supported article formats: .txt, .rtf, .pdf\n\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return flags, flag.Args()
}

// resolveSettings merges flags over the configuration file and profile.
func resolveSettings(flags *configFlags, cfg *config.Config) (format string, verbose, debug, noColor, disableLLM bool, model string) {
	format = cfg.Defaults.Format
	verbose = cfg.Defaults.Verbose
	debug = cfg.Defaults.Debug
	noColor = cfg.Defaults.NoColor
	disableLLM = cfg.Screening.DisableLLM
	model = cfg.Screening.Model

	if flags.profile != "" {
		if p := cfg.GetProfile(flags.profile); p != nil {
			if p.Format != "" {
				format = p.Format
			}
			verbose = verbose || p.Verbose
			debug = debug || p.Debug
			noColor = noColor || p.NoColor
			disableLLM = disableLLM || p.DisableLLM
			if p.Model != "" {
				model = p.Model
			}
		} else {
			fmt.Fprintf(os.Stderr, "Warning: profile '%s' not found, using defaults\n", flags.profile)
		}
	}

	if flags.outputFormat != "" {
		format = flags.outputFormat
	}
	if flags.model != "" {
		model = flags.model
	}
	verbose = verbose || flags.verbose
	debug = debug || flags.debug
	noColor = noColor || flags.noColor
	disableLLM = disableLLM || flags.fallbackOnly
	return format, verbose, debug, noColor, disableLLM, model
}

func main() {
	flags, args := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}
	articlePath, targetName := args[0], args[1]

	cfg := config.LoadConfigOrDefault(flags.configFile)
	format, verbose, debug, noColor, disableLLM, model := resolveSettings(flags, cfg)

	if !isTerminal(os.Stdout) {
		noColor = true
	}

	level := observability.ObservabilityOff
	if debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	var judge screen.Judge
	var translator llm.Translator = llm.PassthroughTranslator{}
	timeout := time.Duration(cfg.Screening.RequestTimeoutSeconds) * time.Second

	if !disableLLM {
		apiKey := flags.apiKey
		if apiKey == "" {
			apiKey = os.Getenv(cfg.Screening.APIKeyEnv)
		}
		if apiKey == "" {
			fmt.Fprintf(os.Stderr, "Warning: no API key in %s, falling back to rule-based screening\n", cfg.Screening.APIKeyEnv)
		} else {
			client := openai.NewClient(apiKey)
			judge = llm.NewMatcher(client, model, timeout, observer)
			if cfg.Screening.Translate {
				translator = llm.NewOpenAITranslator(client, model, observer)
			}
		}
	}

	screener := screen.NewScreener(screen.Options{
		Translator:      translator,
		Judge:           judge,
		Observer:        observer,
		MaxArticleChars: cfg.Screening.MaxArticleChars,
	})

	report, err := screener.ScreenFile(context.Background(), articlePath, targetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levels := flags.confidenceLevels
	if levels == "" {
		levels = cfg.Defaults.ConfidenceLevels
		if flags.profile != "" {
			if p := cfg.GetProfile(flags.profile); p != nil && p.ConfidenceLevels != "" {
				levels = p.ConfidenceLevels
			}
		}
	}

	output, err := formatters.Export(format, report, formatters.FormatterOptions{
		ConfidenceLevel: parseConfidenceLevels(levels),
		Verbose:         verbose,
		NoColor:         noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(output)
	}

	// Exit code 3 flags a MATCH so batch pipelines can route for review
	// without parsing the report.
	if report.Decision.IsMatch() {
		os.Exit(3)
	}
}

// parseConfidenceLevels turns a comma-separated level list into the
// formatter's filter map.
func parseConfidenceLevels(levels string) map[string]bool {
	parsed := make(map[string]bool)
	for _, level := range strings.Split(levels, ",") {
		level = strings.ToLower(strings.TrimSpace(level))
		if level != "" {
			parsed[level] = true
		}
	}
	return parsed
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
