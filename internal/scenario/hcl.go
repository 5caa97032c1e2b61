package scenario

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/idxguard/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// HCLLoader loads .hcl scenario files.
type HCLLoader struct{}

// NewHCLLoader creates a new HCL scenario loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// fileRoot decodes the top-level blocks of a scenario file. There is no
// remain body: unknown blocks and attributes are errors.
type fileRoot struct {
	Description string          `hcl:"description,optional"`
	Addresses   []*addressBlock `hcl:"address,block"`
	Boards      []*boardBlock   `hcl:"board,block"`
	Steps       []*stepBlock    `hcl:"step,block"`
}

// addressBlock is the HCL form of an address declaration.
type addressBlock struct {
	Name     string `hcl:"name,label"`
	Text     string `hcl:"text,optional"`
	Segments []int  `hcl:"segments,optional"`
}

// boardBlock is the HCL form of a board declaration.
type boardBlock struct {
	Name string  `hcl:"name,label"`
	Rows [][]int `hcl:"rows"`
}

// stepBlock is the HCL form of a step. Its arguments stay late-bound
// expressions until translation.
type stepBlock struct {
	Op     string   `hcl:"op,label"`
	Target string   `hcl:"target,label"`
	Remain hcl.Body `hcl:",remain"`
}

// Load parses every .hcl file under the given paths and merges the
// results in discovery order.
func (l *HCLLoader) Load(ctx context.Context, paths ...string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discover(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL scenario files.", "count", len(files))

	parser := hclparse.NewParser()
	merged := &Scenario{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse scenario file %s: %w", file, diags)
		}

		part, err := l.translate(hclFile.Body)
		if err != nil {
			return nil, err
		}
		merge(merged, part)
	}
	return merged, nil
}

// LoadSource parses a single in-memory HCL document.
func (l *HCLLoader) LoadSource(ctx context.Context, filename string, src []byte) (*Scenario, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario source %s: %w", filename, diags)
	}
	return l.translate(hclFile.Body)
}

func (l *HCLLoader) translate(body hcl.Body) (*Scenario, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario: %w", diags)
	}

	sc := &Scenario{Description: root.Description}
	for _, a := range root.Addresses {
		sc.Addresses = append(sc.Addresses, &AddressDecl{
			Name:     a.Name,
			Text:     a.Text,
			Segments: a.Segments,
		})
	}
	for _, b := range root.Boards {
		sc.Boards = append(sc.Boards, &BoardDecl{Name: b.Name, Rows: b.Rows})
	}
	for _, s := range root.Steps {
		step, err := translateStep(s)
		if err != nil {
			return nil, err
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

// translateStep extracts the step's arguments from its remain body. Each
// attribute is evaluated without an evaluation context, so only literal
// values are accepted.
func translateStep(s *stepBlock) (*Step, error) {
	step := &Step{
		Op:     s.Op,
		Target: s.Target,
		Source: s.Remain.MissingItemRange().String(),
	}

	attrs, diags := s.Remain.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read arguments of step %q %q: %w", s.Op, s.Target, diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate argument %q at %s: %w", name, attr.Range, diags)
		}

		n, err := intFromCty(val, name, attr.Range)
		if err != nil {
			return nil, err
		}

		switch name {
		case "index":
			step.Args.Index = &n
		case "row":
			step.Args.Row = &n
		case "col":
			step.Args.Col = &n
		case "value":
			step.Args.Value = &n
		default:
			return nil, fmt.Errorf("unknown argument %q at %s", name, attr.Range)
		}
	}
	return step, nil
}

func intFromCty(val cty.Value, name string, rng hcl.Range) (int, error) {
	if val.IsNull() {
		return 0, fmt.Errorf("argument %q at %s is null", name, rng)
	}
	if val.Type() != cty.Number {
		return 0, fmt.Errorf("argument %q at %s must be a number, got %s", name, rng, val.Type().FriendlyName())
	}

	n, acc := val.AsBigFloat().Int64()
	if acc != big.Exact {
		return 0, fmt.Errorf("argument %q at %s must be an integer", name, rng)
	}
	return int(n), nil
}
