package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/pexplore/config"
	"github.com/s0up4200/pexplore/filter"
	"github.com/s0up4200/pexplore/pexels"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *pexels.Client
	formatter *pexels.ConsoleFormatter

	version   = "dev"
	buildTime = "unknown"

	// Command flags shared across subcommands. Only one command runs per
	// invocation, so sharing is safe.
	jsonOutput      bool
	queryFlag       string
	perPageFlag     int
	pageFlag        int
	orientationFlag string
	sizeFlag        string
	colorFlag       string
	localeFlag      string
	filterFlag      string
	idFlag          int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pexplore",
	Short: "Search and download free stock photos and videos from Pexels",
	Long: `pexplore is a CLI for the Pexels API. It searches photos, videos and
collections, fetches single items by ID, and downloads media files.

An API key is required; set PEXELS_API_KEY or pexels.api_key in the
config file.`,
}

// SetVersion sets the version information for the CLI
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client. It runs
// as PreRunE on every command that talks to the API.
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Pexels client
	opts := []pexels.Option{
		pexels.WithUserAgent("pexplore/" + version),
	}
	if cfg.Pexels.BaseURL != "" {
		opts = append(opts, pexels.WithBaseURL(cfg.Pexels.BaseURL))
	}
	if cfg.Pexels.Timeout > 0 {
		opts = append(opts, pexels.WithTimeout(time.Duration(cfg.Pexels.Timeout)*time.Second))
	}

	client, err = pexels.NewClient(cfg.Pexels.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Pexels client: %w", err)
	}

	formatter = pexels.NewConsoleFormatter()
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a real terminal
	useColor := cfg.Color &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printResult renders a result either as indented JSON or through the
// console formatter
func printResult(v any, console func() string) error {
	if jsonOutput || cfg.Output.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Print(console())
	return nil
}

// compileFilter compiles the --filter expression; an empty flag yields a
// match-all filter
func compileFilter() (*filter.Filter, error) {
	f, err := filter.Compile(filterFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// perPageOrDefault falls back to the configured default page size when the
// flag was not given
func perPageOrDefault() int {
	if perPageFlag > 0 {
		return perPageFlag
	}
	return cfg.Defaults.PerPage
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pexplore %s (built %s)\n", version, buildTime)
	},
}
