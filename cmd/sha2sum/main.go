// sha2sum prints or checks SHA-2 digests.
//
// Usage:
//
//	sha2sum [options] [FILE...]
//
// With no FILE, or when FILE is -, standard input is read.
//
// Options:
//
//	-a, --algorithm  sha256, sha384 or sha512 (default: sha256)
//	-s, --string     hash the given string instead of files
//	-c, --check      read digests from the FILEs and verify them
//	-q, --quiet      with --check, only report failures
//	    --self-test  run the built-in known-answer vectors
//	-v, --verbose    debug logging to stderr
//
// Example:
//
//	sha2sum -a sha512 -s abc
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
