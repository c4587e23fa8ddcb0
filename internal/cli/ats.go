package cli

import (
	"context"
	"fmt"

	"resumetric/internal/analysis"
	"resumetric/internal/common"
	"resumetric/internal/types"

	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats [resume-file]",
	Short: "Check a resume for ATS compatibility",
	Long: `Run the standalone ATS compatibility check on a resume file. The check
scores keyword coverage, section structure, contact details, and formatting
issues without running the full role-fit analysis.

Pass a job description file with --job to include its keywords in the
keyword check.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if atsConfig.OutputFormat == "" {
			atsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(atsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runATS,
}

var (
	atsConfig  common.CommandConfig
	atsJobFile string
)

func init() {
	atsCmd.Flags().StringVarP(&atsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	atsCmd.Flags().StringVar(&atsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	atsCmd.Flags().StringVarP(&atsJobFile, "job", "j", "", "Job description file for the keyword check")

	// Add completion for format flag
	_ = atsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runATS(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	svc, err := newAnalysisService(cfg, logger)
	if err != nil {
		return err
	}

	fileArgs := args
	if atsJobFile != "" {
		fileArgs = append(fileArgs, atsJobFile)
	}

	createInput := func(contents []string) (types.ATSInput, error) {
		input := types.ATSInput{}
		switch len(contents) {
		case 1:
			input.Text = contents[0]
		case 2:
			input.Text = contents[0]
			input.JobDescription = contents[1]
		default:
			return types.ATSInput{}, fmt.Errorf("expected 1 or 2 file paths, got %d", len(contents))
		}
		return input, nil
	}

	logDetails := func(input types.ATSInput, cfg common.CommandConfig) {
		logger.Info("Starting ATS check",
			"resume_chars", len(input.Text),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	atsOperation := func(ctx context.Context, input types.ATSInput) (types.ATSReport, *analysis.EngineStats, error) {
		return svc.AnalyzeATS(ctx, input)
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		atsConfig,
		fileArgs,
		createInput,
		atsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to run ATS check: %w", err)
	}
	logger.Info("ATS check completed successfully")
	return nil
}
