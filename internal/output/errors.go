package output

import "fmt"

// Exit codes used across the CLI
const (
	ExitOK          = 0 // Success
	ExitGeneral     = 1 // General error
	ExitUsage       = 2 // Invalid usage / bad arguments
	ExitAuth        = 3 // Master password failure
	ExitNotFound    = 4 // Entry not found
	ExitConfigError = 5 // Configuration error
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// ExitWithError prints the error via the formatter. The os.Exit call stays
// in main.go so the whole shutdown path is visible in one place.
func ExitWithError(formatter Formatter, err error) {
	if cliErr, ok := err.(*CLIError); ok {
		formatter.PrintError(err)
		if cliErr.Hint != "" {
			formatter.PrintHint(cliErr.Hint)
		}
		return
	}

	formatter.PrintError(fmt.Errorf("error: %v", err))
}
