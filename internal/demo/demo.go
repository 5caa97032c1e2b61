// Package demo ships the built-in guided tour that runs when no scenario
// path is given: a hard-coded walk through the fail-fast address API,
// followed by an embedded scenario driving both containers through the
// regular loader and runner.
package demo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/vk/idxguard/internal/ctxlog"
	"github.com/vk/idxguard/internal/ipaddr"
	"github.com/vk/idxguard/internal/runner"
	"github.com/vk/idxguard/internal/scenario"
)

//go:embed tour.hcl
var tourHCL []byte

// Run plays the tour. Rendered containers go to out, everything else to
// the context logger.
func Run(ctx context.Context, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Built-in tour starting.")

	if err := addressWalkthrough(ctx, out); err != nil {
		return err
	}
	if err := runEmbeddedScenario(ctx, out); err != nil {
		return err
	}

	logger.Info("🏁 Built-in tour finished.")
	return nil
}

// addressWalkthrough exercises every failure mode of the fail-fast
// container and shows that callers can branch on the error kind.
func addressWalkthrough(ctx context.Context, out io.Writer) error {
	logger := ctxlog.FromContext(ctx).With("part", "addresses")

	a, err := ipaddr.Parse("192.168.0.1")
	if err != nil {
		return fmt.Errorf("tour address should parse: %w", err)
	}
	logger.Info("Parsed dotted text.", "address", a.String())

	// Wrong segment count, non-integer token, out-of-range value. Each is
	// refused whole; nothing is partially constructed.
	for _, text := range []string{"10.0.42", "10.0.a.1", "300.1.1.1"} {
		if _, err := ipaddr.Parse(text); err != nil {
			logger.Warn("Parse rejected input.", "input", text, "kind", errKind(err), "error", err)
		}
	}

	if _, err := ipaddr.New(10, 300, 0, 1); err != nil {
		logger.Warn("Construction rejected values.", "kind", errKind(err), "error", err)
	}

	if err := a.SetSegment(2, 42); err != nil {
		return fmt.Errorf("tour write should apply: %w", err)
	}
	logger.Info("Segment written.", "address", a.String())

	if err := a.SetSegment(0, 256); err != nil {
		logger.Warn("Write rejected, address unchanged.", "kind", errKind(err), "address", a.String())
	}
	if _, err := a.Segment(9); err != nil {
		logger.Warn("Read rejected.", "kind", errKind(err), "error", err)
	}

	fmt.Fprintln(out, a.String())
	return nil
}

// runEmbeddedScenario pushes the embedded tour file through the same
// loader, validation and runner a user scenario would take.
func runEmbeddedScenario(ctx context.Context, out io.Writer) error {
	sc, err := scenario.NewHCLLoader().LoadSource(ctx, "tour.hcl", tourHCL)
	if err != nil {
		return fmt.Errorf("embedded tour is broken: %w", err)
	}
	if err := scenario.Validate(sc); err != nil {
		return fmt.Errorf("embedded tour is broken: %w", err)
	}

	_, err = runner.New(out).Run(ctx, sc)
	return err
}

// errKind names the sentinel an address error matches, for log records.
func errKind(err error) string {
	switch {
	case errors.Is(err, ipaddr.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ipaddr.ErrInvalidSyntax):
		return "invalid_syntax"
	case errors.Is(err, ipaddr.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ipaddr.ErrInvalidIndex):
		return "invalid_index"
	default:
		return "unknown"
	}
}
