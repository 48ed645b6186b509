// Package errors provides structured error types for better observability
// and programmatic error handling across the cookbook tool.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeParse,
//	    "malformed ingredient record",
//	    map[string]any{
//	        "line":    12,
//	        "content": "eggs | two | pcs",
//	    },
//	)
//
// Use CodeOf to recover the code from a wrapped error chain:
//
//	if errors.CodeOf(err) == errors.ErrCodeNotFound {
//	    // ...
//	}
package errors
