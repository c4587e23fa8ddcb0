package cli

import (
	"context"
	"fmt"

	"resumetric/internal/analysis"
	"resumetric/internal/config"
	"resumetric/internal/engine/roles"
	"resumetric/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "resumetric",
	Short: "A CLI tool for deterministic resume analysis",
	Long: `Resumetric is a command-line tool that analyzes resumes against a
catalog of role profiles. It extracts skills and contact details, scores
role fit, checks ATS compatibility, and generates a written assessment,
all without calling external services.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// newAnalysisService builds the engine over the configured role catalog
func newAnalysisService(cfg *config.Config, logger *errors.Logger) (*analysis.Service, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load role catalog: %w", err)
	}
	return analysis.NewService(catalog, logger), nil
}

// loadCatalog returns the configured catalog, falling back to the built-in one
func loadCatalog(cfg *config.Config) (*roles.Catalog, error) {
	if cfg.Engine.CatalogFile != "" {
		return roles.LoadCatalog(cfg.Engine.CatalogFile)
	}
	return roles.DefaultCatalog(), nil
}

// resolveLanguage picks the analysis language from the flag and config.
// An empty result means auto-detect.
func resolveLanguage(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Engine.DetectLanguage {
		return ""
	}
	return cfg.Engine.DefaultLanguage
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(atsCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
