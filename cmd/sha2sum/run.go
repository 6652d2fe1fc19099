package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backkem/sha2/pkg/kat"
	"github.com/backkem/sha2/pkg/sha2"
	"github.com/pion/logging"
	"github.com/spf13/pflag"
)

// stdinName is the FILE argument that selects standard input.
const stdinName = "-"

type command struct {
	opts    options
	alg     sha2.Algorithm
	stdin   io.Reader
	stdout  io.Writer
	factory logging.LoggerFactory
	log     logging.LeveledLogger
}

// run executes sha2sum and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "sha2sum: %v\n", err)
		return exitCode(err)
	}

	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = stderr
	factory.DefaultLogLevel = logging.LogLevelWarn
	if opts.Verbose {
		factory.DefaultLogLevel = logging.LogLevelDebug
	}

	c := &command{
		opts:    opts,
		stdin:   stdin,
		stdout:  stdout,
		factory: factory,
		log:     factory.NewLogger("sha2sum"),
	}
	if err := c.execute(); err != nil {
		fmt.Fprintf(stderr, "sha2sum: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func (c *command) execute() error {
	if c.opts.SelfTest {
		return c.selfTest()
	}
	if c.opts.Check {
		return c.check()
	}

	alg, err := kat.ParseAlgorithm(c.opts.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", err, errUsage)
	}
	c.alg = alg
	c.log.Debugf("algorithm %v", alg)

	if c.opts.HashString {
		_, err := fmt.Fprintf(c.stdout, "%x\n", sha2.Sum(c.alg, []byte(c.opts.String)))
		return err
	}
	return c.hashFiles()
}

// hashFiles prints "<digest>  <name>" for every input. Unreadable inputs
// are reported and skipped.
func (c *command) hashFiles() error {
	var errs []error
	for _, name := range c.inputs() {
		data, err := c.readInput(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.log.Debugf("%s: %d bytes", name, len(data))

		if _, err := fmt.Fprintf(c.stdout, "%x  %s\n", sha2.Sum(c.alg, data), name); err != nil {
			return fmt.Errorf("write digest: %w", err)
		}
	}
	return errors.Join(errs...)
}

// check verifies every "<digest>  <name>" line of every input. The
// algorithm of each line follows from its digest length.
func (c *command) check() error {
	var (
		checked   int
		failed    int
		malformed int
	)

	for _, list := range c.inputs() {
		data, err := c.readInput(list)
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(bytes.NewReader(data))
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}

			alg, want, name, ok := parseChecksumLine(text)
			if !ok {
				malformed++
				c.log.Warnf("%s:%d: improperly formatted checksum line", list, line)
				continue
			}

			checked++
			if !c.verify(alg, want, name) {
				failed++
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read %s: %w", list, err)
		}
	}

	if checked == 0 {
		return fmt.Errorf("no properly formatted checksum lines found: %w", errChecksumMismatch)
	}
	if malformed > 0 {
		c.log.Warnf("%d line(s) improperly formatted", malformed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d computed checksums did not match: %w", failed, checked, errChecksumMismatch)
	}
	return nil
}

func (c *command) verify(alg sha2.Algorithm, want []byte, name string) bool {
	data, err := c.readInput(name)
	if err != nil {
		c.log.Warnf("%v", err)
		fmt.Fprintf(c.stdout, "%s: FAILED open or read\n", name)
		return false
	}

	if !bytes.Equal(sha2.Sum(alg, data), want) {
		fmt.Fprintf(c.stdout, "%s: FAILED\n", name)
		return false
	}
	if !c.opts.Quiet {
		fmt.Fprintf(c.stdout, "%s: OK\n", name)
	}
	return true
}

// parseChecksumLine splits "<hex digest>  <name>" or "<hex digest> *<name>".
func parseChecksumLine(line string) (sha2.Algorithm, []byte, string, bool) {
	digestHex, name, found := strings.Cut(line, " ")
	if !found {
		return 0, nil, "", false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(name, " "), "*")
	if name == "" {
		return 0, nil, "", false
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return 0, nil, "", false
	}

	for _, alg := range []sha2.Algorithm{sha2.SHA256, sha2.SHA384, sha2.SHA512} {
		if len(digest) == alg.Size() {
			return alg, digest, name, true
		}
	}
	return 0, nil, "", false
}

func (c *command) selfTest() error {
	vectors, err := kat.Load()
	if err != nil {
		return err
	}

	results, err := kat.NewChecker(kat.Config{LoggerFactory: c.factory}).Check(vectors)
	for _, r := range results {
		status := "OK"
		if r.Err != nil {
			status = "FAILED"
		}
		fmt.Fprintf(c.stdout, "%s: %s\n", r.Vector.Name, status)
	}
	return err
}

func (c *command) inputs() []string {
	if len(c.opts.Files) == 0 {
		return []string{stdinName}
	}
	return c.opts.Files
}

// readInput returns the whole content of the named file, or of standard
// input for "-".
func (c *command) readInput(name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
