package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/medscan/internal/config"
	"github.com/MeKo-Tech/medscan/internal/ocr"
	"github.com/MeKo-Tech/medscan/internal/pipeline"
	"github.com/MeKo-Tech/medscan/internal/registry"
	"github.com/MeKo-Tech/medscan/internal/version"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "medscan",
	Short: "Medical report extraction and classification",
	Long: `medscan ingests medical reports as PDF, image, or pasted text and turns
them into structured, severity-classified measurements.

This tool provides:
- Page-type detection routing pages to native text extraction or OCR
- Test type detection across cardiac, vascular, and laboratory families
- Table recovery from EMR text exports
- Reference-range severity classification

Examples:
  medscan extract report.pdf
  medscan parse report.pdf --format json
  medscan detect scan.png --multi
  medscan types`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.PersistentFlags().GetBool("version"); v {
			ver, commit, date := version.Info()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "medscan version %s\n", ver)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/medscan, /etc/medscan)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("format", "json", "output format (json, text)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		var logLevel slog.Level
		if globalConfig.Verbose {
			logLevel = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelInfo
			}
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configLoader = config.NewLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = configLoader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = configLoader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the global configuration.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	return globalConfig
}

// buildPipeline assembles the extraction pipeline from configuration.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	corrections := ocr.DefaultCorrections()
	if cfg.OCR.CorrectionsFile != "" {
		loaded, err := ocr.LoadCorrections(cfg.OCR.CorrectionsFile)
		if err != nil {
			return nil, fmt.Errorf("loading OCR corrections: %w", err)
		}
		corrections = loaded
	}
	return pipeline.New(pipeline.Options{
		Engine:      ocr.NewTesseract(cfg.OCR.Language),
		Corrections: corrections,
		Workers:     cfg.OCR.Workers,
		ImageDPI:    cfg.OCR.ImageDPI,
		MaxPages:    cfg.Extraction.MaxPages,
	}), nil
}

// buildRegistry assembles the default test-type registry, wiring the
// correction store when one is configured. The returned closer releases
// the store and is safe to call on a nil-store registry.
func buildRegistry(cfg *config.Config) (*registry.Registry, func(), error) {
	if cfg.Detection.CorrectionsDB == "" {
		return registry.Default(nil), func() {}, nil
	}

	store, err := registry.OpenSQLiteStore(cfg.Detection.CorrectionsDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening corrections store: %w", err)
	}
	cache := registry.NewCorrectionCache(store)
	return registry.Default(cache), func() { _ = store.Close() }, nil
}
