package cli

import (
	"context"
	"fmt"

	"resumetric/internal/analysis"
	"resumetric/internal/common"
	"resumetric/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume for role fit, ATS compatibility, and strengths",
	Long: `Analyze a resume against the role catalog. The command takes the path
to a resume file (plain text, Markdown, PDF, or DOCX) and produces a full
report.

The analysis includes:
- Candidate profile with extracted skills and contact details
- Ranked role matches with matching and missing skills
- ATS compatibility score with keyword and formatting checks
- A written assessment with strengths and improvement suggestions
- A skill recommendation for the closest role

Pass a job description file with --job to include its keywords in the
ATS keyword check.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig   common.CommandConfig
	analyzeJobFile  string
	analyzeLanguage string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Job description file for the ATS keyword check")
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "lang", "", "Assessment language: en, de, es, or fr (default: auto-detect)")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	svc, err := newAnalysisService(cfg, logger)
	if err != nil {
		return err
	}

	language := resolveLanguage(analyzeLanguage, cfg)

	// The job description file rides along as a second input when given
	fileArgs := args
	if analyzeJobFile != "" {
		fileArgs = append(fileArgs, analyzeJobFile)
	}

	createInput := func(contents []string) (types.AnalyzeResumeInput, error) {
		input := types.AnalyzeResumeInput{Language: language}
		switch len(contents) {
		case 1:
			input.Text = contents[0]
		case 2:
			input.Text = contents[0]
			input.JobDescription = contents[1]
		default:
			return types.AnalyzeResumeInput{}, fmt.Errorf("expected 1 or 2 file paths, got %d", len(contents))
		}
		return input, nil
	}

	logDetails := func(input types.AnalyzeResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.Text),
			"job_chars", len(input.JobDescription),
			"language", input.Language,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeResumeInput) (types.AnalyzeResumeOutput, *analysis.EngineStats, error) {
		return svc.AnalyzeResume(ctx, input)
	}

	err = common.RunEngineCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		fileArgs,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
