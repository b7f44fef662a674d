package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success (including cancelled selection)
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing config, invalid paths)
	ExitNotFound    = 3 // No document found for the chosen entry
)
