// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeSourceUnavailable,
//	    "command exited in failure",
//	    cause,
//	    map[string]any{
//	        "source": "lspci",
//	        "args":   []string{"-vv"},
//	    },
//	)
package errors
