package main

import "errors"

var (
	// errUsage indicates a command usage failure.
	errUsage = errors.New("usage error")

	// errChecksumMismatch indicates at least one digest did not verify.
	errChecksumMismatch = errors.New("checksum mismatch")
)

// exitCode maps an error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		return 2
	}
	return 1
}
