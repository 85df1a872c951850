// Package workflow launches the external Snakemake workflow and forwards
// its output to the caller's streams.
package workflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

const maxLineBytes = 1024 * 1024

// Runner invokes the workflow binary once with fixed arguments. There is no
// retry and no timeout; cancellation comes from the context.
type Runner struct {
	Binary          string
	Cores           int
	Verbose         bool
	RerunIncomplete bool

	// Stdout and Stderr receive the child's output. Defaults to the
	// process's own streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Runner) args() []string {
	args := []string{"--cores", strconv.Itoa(r.Cores)}
	if r.Verbose {
		args = append(args, "--verbose")
	}
	if r.RerunIncomplete {
		args = append(args, "--rerun-incomplete")
	}
	return args
}

// Run executes the workflow and blocks until it exits. Both output streams
// are forwarded line-by-line by concurrent readers, so lines appear in
// emission order as closely as the pipes allow; order within each stream is
// exact. A non-zero exit status is returned as an error carrying the code.
func (r *Runner) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.Binary, r.args()...)
	slog.Debug("starting workflow", "binary", r.Binary, "args", cmd.Args[1:])

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("workflow: stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("workflow: stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("workflow: starting %s: %w", r.Binary, err)
	}

	g := new(errgroup.Group)
	g.Go(func() error { return forwardLines(stdout, orDefault(r.Stdout, os.Stdout)) })
	g.Go(func() error { return forwardLines(stderr, orDefault(r.Stderr, os.Stderr)) })
	forwardErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("workflow: %s exited with code %d", r.Binary, exitErr.ExitCode())
		}
		return fmt.Errorf("workflow: running %s: %w", r.Binary, err)
	}

	if forwardErr != nil {
		return fmt.Errorf("workflow: forwarding output: %w", forwardErr)
	}
	return nil
}

// Version probes the workflow binary's version. Failures degrade to
// "unknown" rather than aborting the run; the version only feeds a report
// placeholder.
func (r *Runner) Version(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, r.Binary, "--version").Output()
	if err != nil {
		slog.Debug("workflow version probe failed", "binary", r.Binary, "error", err)
		return "unknown"
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "unknown"
	}
	return v
}

func forwardLines(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func orDefault(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
