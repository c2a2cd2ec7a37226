package cliutil

import (
	"fmt"
	"os"
)

// Exit codes for different error scenarios
const (
	ExitSuccess          = 0 // Success
	ExitGeneralError     = 1 // General error
	ExitInvalidArguments = 2 // Invalid arguments/usage
	ExitNotFound         = 3 // Credential not found / nothing resolved
	ExitConfigError      = 4 // Invalid configuration or credentials file
)

// ExitWithError prints error message and exits with the general error code
func ExitWithError(err error, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitGeneralError)
}

// ExitWithCode prints error message and exits with specific code
func ExitWithCode(code int, message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	os.Exit(code)
}
