package common

import (
	"context"
	"fmt"
	"os"

	"resumetric/internal/analysis"
	"resumetric/internal/errors"
)

// CreateInputFunc defines how to create the operation input from file contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// EngineOperationFunc is a generic function signature for any engine operation
// with context and execution stats.
type EngineOperationFunc[Input, Output any] func(context.Context, Input) (Output, *analysis.EngineStats, error)

// RunEngineCommand encapsulates the common logic for file-based CLI commands
// with engine stats reporting.
func RunEngineCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation EngineOperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	// Pass the logger when creating helpers
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from file contents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, stats, err := operation(ctx, input)
	if err != nil {
		return err
	}

	// Report engine stats
	if stats != nil {
		if logger != nil {
			logger.Info("Engine stats", "skills_extracted", stats.SkillsExtracted, "roles_evaluated", stats.RolesEvaluated, "text_length", stats.TextLength, "duration", stats.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Engine stats: skills=%d, roles=%d, duration=%s\n", stats.SkillsExtracted, stats.RolesEvaluated, stats.Duration)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
