// Package runner executes a validated scenario: it builds the declared
// containers, applies the steps in order and tallies the outcomes.
//
// The two container kinds keep their own failure contracts here. Address
// operations return errors; the runner catches them, logs them and keeps
// going. Board operations never error; their outcomes arrive as observer
// events, which the runner counts and forwards to the log.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/idxguard/internal/board"
	"github.com/vk/idxguard/internal/ctxlog"
	"github.com/vk/idxguard/internal/ipaddr"
	"github.com/vk/idxguard/internal/scenario"
)

// Result tallies the outcomes of one run.
type Result struct {
	// Steps is the number of steps executed.
	Steps int

	// Applied counts successful mutations on both container kinds.
	Applied int

	// Rejected counts board accesses dropped by the fail-soft checks.
	Rejected int

	// Failed counts address operations that returned an error.
	Failed int
}

// Runner executes scenarios sequentially. Rendered containers are written
// to out; everything else goes to the context logger.
type Runner struct {
	out io.Writer
}

// New creates a Runner writing rendered output to out.
func New(out io.Writer) *Runner {
	return &Runner{out: out}
}

// Run builds the scenario's containers and applies its steps in order.
// Declaration errors abort the run; step-level address errors are counted
// in Result.Failed and do not stop it. The context is checked between
// steps.
func (r *Runner) Run(ctx context.Context, sc *scenario.Scenario) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Scenario starting.", "description", sc.Description, "steps", len(sc.Steps))

	res := &Result{}

	addrs := make(map[string]*ipaddr.Address, len(sc.Addresses))
	for _, d := range sc.Addresses {
		a, err := buildAddress(d)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", d.Name, err)
		}
		addrs[d.Name] = a
		logger.Debug("Address ready.", "name", d.Name, "text", a.String())
	}

	boards := make(map[string]*board.Board, len(sc.Boards))
	for _, d := range sc.Boards {
		obs := counting(res, board.NewLogObserver(logger.With("board", d.Name)))
		b, err := board.New(d.Rows, board.WithObserver(obs))
		if err != nil {
			return nil, fmt.Errorf("board %q: %w", d.Name, err)
		}
		boards[d.Name] = b
		logger.Debug("Board ready.", "name", d.Name)
	}

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("scenario interrupted at step %d: %w", i, err)
		}
		res.Steps++

		logger := logger.With("step", i, "op", st.Op, "target", st.Target)
		logger.Debug("▶️ Executing step.")

		if a, ok := addrs[st.Target]; ok {
			r.runAddressStep(logger, a, st, res)
			continue
		}
		if b, ok := boards[st.Target]; ok {
			r.runBoardStep(logger, b, st)
			continue
		}
		return res, fmt.Errorf("step %d targets unknown container %q", i, st.Target)
	}

	logger.Info("🏁 Scenario finished.",
		"steps", res.Steps,
		"applied", res.Applied,
		"rejected", res.Rejected,
		"failed", res.Failed,
	)
	return res, nil
}

// runAddressStep applies one step to an address. Errors from the
// container are demoted to log records and a Failed tick so that later
// steps still run.
func (r *Runner) runAddressStep(logger *slog.Logger, a *ipaddr.Address, st *scenario.Step, res *Result) {
	switch st.Op {
	case scenario.OpGet:
		v, err := a.Segment(*st.Args.Index)
		if err != nil {
			res.Failed++
			logger.Error("Address operation failed.", "error", err, "source", st.Source)
			return
		}
		logger.Info("Segment read.", "index", *st.Args.Index, "value", v)

	case scenario.OpSet:
		if err := a.SetSegment(*st.Args.Index, *st.Args.Value); err != nil {
			res.Failed++
			logger.Error("Address operation failed.", "error", err, "source", st.Source)
			return
		}
		res.Applied++
		logger.Info("Segment written.", "index", *st.Args.Index, "value", *st.Args.Value)

	case scenario.OpRender:
		r.print(logger, a.String())
	}
}

// runBoardStep applies one step to a board. Rejections surface through
// the board's observer, so there is nothing to catch here.
func (r *Runner) runBoardStep(logger *slog.Logger, b *board.Board, st *scenario.Step) {
	switch st.Op {
	case scenario.OpGet:
		v := b.Get(*st.Args.Row, *st.Args.Col)
		logger.Info("Cell read.", "row", *st.Args.Row, "col", *st.Args.Col, "value", v)

	case scenario.OpSet:
		b.Set(*st.Args.Row, *st.Args.Col, *st.Args.Value)

	case scenario.OpRender:
		r.print(logger, b.String())
	}
}

// print writes rendered container content to the runner's output stream.
// The log line records the act; the content itself stays clean for piping.
func (r *Runner) print(logger *slog.Logger, content string) {
	logger.Info("🖨️ Rendering container.")
	fmt.Fprintln(r.out, content)
}

// counting wraps next so that every applied event bumps Applied and every
// rejection bumps Rejected before the event is forwarded.
func counting(res *Result, next board.Observer) board.Observer {
	return board.ObserverFunc(func(e board.Event) {
		if e.Kind == board.KindApplied {
			res.Applied++
		} else {
			res.Rejected++
		}
		next.Observe(e)
	})
}

// buildAddress constructs the address a declaration describes. A segment
// list of the wrong length is the list form of a malformed dotted quad,
// so it maps to ipaddr.ErrInvalidFormat.
func buildAddress(d *scenario.AddressDecl) (*ipaddr.Address, error) {
	if d.Text != "" {
		a, err := ipaddr.Parse(d.Text)
		if err != nil {
			return nil, err
		}
		return &a, nil
	}

	if len(d.Segments) != ipaddr.Segments {
		return nil, fmt.Errorf("%w: got %d segments in list form", ipaddr.ErrInvalidFormat, len(d.Segments))
	}
	a, err := ipaddr.New(d.Segments[0], d.Segments[1], d.Segments[2], d.Segments[3])
	if err != nil {
		return nil, err
	}
	return &a, nil
}
