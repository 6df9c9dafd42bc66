package errors

import (
	"fmt"
	"strings"
)

// FormatUserError returns a user-friendly error message with actionable
// guidance. It examines the error chain and provides context-appropriate
// help text.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var configErr *ConfigError
	if As(err, &configErr) {
		return formatConfigError(configErr)
	}

	var wfErr *WorkflowError
	if As(err, &wfErr) {
		return formatWorkflowError(wfErr)
	}

	// Default: return the error message as-is
	return err.Error()
}

// formatConfigError formats a ConfigError with actionable guidance.
func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/flow/config.toml\n")
	b.WriteString("  • Or pass --config with an explicit path\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatWorkflowError formats a WorkflowError with guidance per operation.
func formatWorkflowError(err *WorkflowError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Workflow %s failed: %s\n", err.Operation, err.Message)

	switch err.Operation {
	case "link", "unlink":
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check that Alfred is installed and has been launched at least once\n")
		b.WriteString("  • If the destination exists and is a real directory, remove it manually\n")

	case "pack":
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check that the workflow directory exists and is readable\n")
		b.WriteString("  • Check that 'zip' is available on PATH\n")

	case "install":
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check that the .alfredworkflow file exists\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}
