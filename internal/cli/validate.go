package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/minesweep/internal/harness"
)

// FileValidation is the validation result for one scenario file.
type FileValidation struct {
	Path  string `json:"path"`
	Name  string `json:"name,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario-file>...",
		Short: "Validate scenario files without running them",
		Long: `Validate scenario files without running them.

Checks YAML syntax, rejects unknown fields, checks each file against the
scenario schema (CUE) and applies the cross-field rules (mines vs seed,
board shape, start_error without moves).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return outputValidateError(formatter, ErrCodeNotFound, fmt.Sprintf("scenario file not found: %s", path), nil)
		}
	}

	result := ValidationResult{Valid: true, Files: make([]FileValidation, 0, len(paths))}
	for _, path := range paths {
		formatter.VerboseLog("Validating %s", path)

		fv := FileValidation{Path: path, Valid: true}
		s, err := harness.LoadScenario(path)
		if err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			result.Valid = false
		} else {
			fv.Name = s.Name
		}
		result.Files = append(result.Files, fv)
	}

	if !result.Valid {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, f := range result.Files {
		fmt.Fprintf(formatter.Writer, "✓ %s (%s)\n", f.Path, f.Name)
	}
	fmt.Fprintln(formatter.Writer, "✓ All scenarios valid")
	return nil
}

// outputValidateError outputs a single command-level error.
func outputValidateError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs per-file results when any file is invalid.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	invalid := 0
	for _, f := range result.Files {
		if !f.Valid {
			invalid++
		}
	}

	if formatter.Format == "json" {
		var first FileValidation
		for _, f := range result.Files {
			if !f.Valid {
				first = f
				break
			}
		}
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    ErrCodeScenario,
				Message: first.Error,
			},
		}
		if err := writeIndentedJSON(formatter.Writer, response); err != nil {
			return err
		}
		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d file(s)", invalid))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, f := range result.Files {
		if f.Valid {
			fmt.Fprintf(formatter.Writer, "✓ %s\n", f.Path)
			continue
		}
		fmt.Fprintf(formatter.Writer, "✗ %s\n  %s\n", f.Path, f.Error)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed for %d file(s)", invalid))
}
