package main

// Exit codes for the CLI
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitInvalidArgument = 2
	ExitNotConfigured   = 3
	ExitNotFound        = 4
	ExitUnauthorized    = 5
	ExitAPIError        = 6
	ExitDecodeError     = 7
)
