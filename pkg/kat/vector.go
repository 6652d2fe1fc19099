// Package kat provides known-answer test vectors for the SHA-2 engine and
// a checker that runs them.
package kat

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/backkem/sha2/pkg/sha2"
	"gopkg.in/yaml.v3"
)

//go:embed vectors.yaml
var builtin []byte

// Vector is a single known-answer test case.
type Vector struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`

	// Message is the input as text. MessageHex, when set, takes its place.
	Message    string `yaml:"message"`
	MessageHex string `yaml:"message_hex"`

	// Repeat concatenates the message with itself. Zero means once.
	Repeat int `yaml:"repeat"`

	// Digest is the hex-encoded expected digest.
	Digest string `yaml:"digest"`
}

type catalogue struct {
	Vectors []Vector `yaml:"vectors"`
}

// Load returns the built-in vector catalogue.
func Load() ([]Vector, error) {
	return Parse(builtin)
}

// Parse decodes a YAML vector catalogue and validates every entry.
func Parse(data []byte) ([]Vector, error) {
	var c catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("kat: decode catalogue: %w", err)
	}
	for i := range c.Vectors {
		if _, _, _, err := c.Vectors[i].Decode(); err != nil {
			return nil, err
		}
	}
	return c.Vectors, nil
}

// Decode resolves the vector into an algorithm, message bytes and the
// expected digest.
func (v *Vector) Decode() (sha2.Algorithm, []byte, []byte, error) {
	alg, err := ParseAlgorithm(v.Algorithm)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("vector %q: %w", v.Name, err)
	}

	message := []byte(v.Message)
	if v.MessageHex != "" {
		message, err = hex.DecodeString(v.MessageHex)
		if err != nil {
			return 0, nil, nil, fmt.Errorf("vector %q: message_hex: %v: %w", v.Name, err, ErrInvalidVector)
		}
	}
	if v.Repeat < 0 {
		return 0, nil, nil, fmt.Errorf("vector %q: negative repeat: %w", v.Name, ErrInvalidVector)
	}
	if v.Repeat > 1 {
		message = bytes.Repeat(message, v.Repeat)
	}

	digest, err := hex.DecodeString(v.Digest)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("vector %q: digest: %v: %w", v.Name, err, ErrInvalidVector)
	}
	if len(digest) != alg.Size() {
		return 0, nil, nil, fmt.Errorf("vector %q: digest is %d bytes, want %d: %w",
			v.Name, len(digest), alg.Size(), ErrInvalidVector)
	}

	return alg, message, digest, nil
}

// ParseAlgorithm maps an algorithm name to its selector. It accepts
// "sha256", "SHA-256" and "256" style spellings.
func ParseAlgorithm(name string) (sha2.Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(strings.ReplaceAll(n, "-", ""), "sha")
	switch n {
	case "256":
		return sha2.SHA256, nil
	case "384":
		return sha2.SHA384, nil
	case "512":
		return sha2.SHA512, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
