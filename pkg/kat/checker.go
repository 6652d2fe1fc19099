package kat

import (
	"bytes"
	"fmt"

	"github.com/backkem/sha2/pkg/sha2"
	"github.com/pion/logging"
)

// Config configures a Checker.
type Config struct {
	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Checker runs known-answer vectors through sha2.Sum.
type Checker struct {
	log logging.LeveledLogger
}

// Result is the outcome of one vector.
type Result struct {
	Vector Vector
	Got    []byte
	Err    error
}

// NewChecker creates a Checker.
func NewChecker(config Config) *Checker {
	c := &Checker{}
	if config.LoggerFactory != nil {
		c.log = config.LoggerFactory.NewLogger("kat")
	}
	return c
}

// Check hashes every vector and compares the digest. It returns one result
// per vector, and an error wrapping ErrMismatch if any vector failed.
func (c *Checker) Check(vectors []Vector) ([]Result, error) {
	results := make([]Result, 0, len(vectors))
	failed := 0

	for _, v := range vectors {
		r := c.checkOne(v)
		if r.Err != nil {
			failed++
		}
		results = append(results, r)
	}

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d vectors failed", ErrMismatch, failed, len(vectors))
	}
	return results, nil
}

func (c *Checker) checkOne(v Vector) Result {
	alg, message, want, err := v.Decode()
	if err != nil {
		if c.log != nil {
			c.log.Warnf("%s: %v", v.Name, err)
		}
		return Result{Vector: v, Err: err}
	}

	got := sha2.Sum(alg, message)
	if !bytes.Equal(got, want) {
		if c.log != nil {
			c.log.Warnf("%s: got %x, want %x", v.Name, got, want)
		}
		return Result{Vector: v, Got: got, Err: fmt.Errorf("vector %q: %w", v.Name, ErrMismatch)}
	}

	if c.log != nil {
		c.log.Debugf("%s: ok (%d byte message)", v.Name, len(message))
	}
	return Result{Vector: v, Got: got}
}
