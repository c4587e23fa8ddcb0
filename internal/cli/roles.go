package cli

import (
	"resumetric/internal/common"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the role catalog used for matching",
	Long: `List the role profiles the analyzer matches resumes against, with
their seniority, skill categories, and minimum skill thresholds. By default
the built-in catalog is shown; configure engine.catalogFile to load a
custom catalog from JSON.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if rolesConfig.OutputFormat == "" {
			rolesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(rolesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoles,
}

var rolesConfig common.CommandConfig

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rolesCmd.Flags().StringVar(&rolesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = rolesCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	svc, err := newAnalysisService(cfg, logger)
	if err != nil {
		return err
	}

	result := svc.ListRoles(cmd.Context())
	logger.Info("Listing role catalog", "roles", len(result.Roles))

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(result, rolesConfig)
}
