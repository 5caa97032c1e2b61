package scenario

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDecl reports a container declaration that is internally
	// inconsistent, such as an address with both text and segments.
	ErrInvalidDecl = errors.New("invalid declaration")

	// ErrDuplicateName reports two declarations sharing one name.
	ErrDuplicateName = errors.New("duplicate declaration name")

	// ErrUnknownOp reports a step op outside get, set and render.
	ErrUnknownOp = errors.New("unknown step op")

	// ErrUnknownTarget reports a step whose target is not declared.
	ErrUnknownTarget = errors.New("step targets an undeclared container")

	// ErrMissingArgument reports a step lacking an argument its op needs.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnexpectedArgument reports an argument the step's op does not take.
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

type targetKind int

const (
	kindAddress targetKind = iota
	kindBoard
)

// Validate checks the structure of a loaded scenario: declaration
// consistency, unique names, known ops, declared targets and the right
// argument set per step. Argument values are not range-checked here;
// out-of-range indexes and values are the containers' business.
func Validate(sc *Scenario) error {
	kinds := make(map[string]targetKind, len(sc.Addresses)+len(sc.Boards))

	for _, d := range sc.Addresses {
		if d.Name == "" {
			return fmt.Errorf("%w: address declaration without a name", ErrInvalidDecl)
		}
		if _, exists := kinds[d.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		hasText := d.Text != ""
		hasSegments := len(d.Segments) > 0
		if hasText == hasSegments {
			return fmt.Errorf("%w: address %q must set exactly one of text or segments", ErrInvalidDecl, d.Name)
		}
		kinds[d.Name] = kindAddress
	}

	for _, d := range sc.Boards {
		if d.Name == "" {
			return fmt.Errorf("%w: board declaration without a name", ErrInvalidDecl)
		}
		if _, exists := kinds[d.Name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		kinds[d.Name] = kindBoard
	}

	for i, st := range sc.Steps {
		if err := validateStep(i, st, kinds); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(i int, st *Step, kinds map[string]targetKind) error {
	kind, declared := kinds[st.Target]
	if !declared {
		return fmt.Errorf("%w: step %d (%s %q)", ErrUnknownTarget, i, st.Op, st.Target)
	}

	want, known := requiredArgs(st.Op, kind)
	if !known {
		return fmt.Errorf("%w: step %d has op %q", ErrUnknownOp, i, st.Op)
	}

	checks := []struct {
		name string
		want bool
		got  bool
	}{
		{"index", want.index, st.Args.Index != nil},
		{"row", want.row, st.Args.Row != nil},
		{"col", want.col, st.Args.Col != nil},
		{"value", want.value, st.Args.Value != nil},
	}
	for _, c := range checks {
		if c.want && !c.got {
			return fmt.Errorf("%w: step %d (%s %q) needs %q", ErrMissingArgument, i, st.Op, st.Target, c.name)
		}
		if !c.want && c.got {
			return fmt.Errorf("%w: step %d (%s %q) does not take %q", ErrUnexpectedArgument, i, st.Op, st.Target, c.name)
		}
	}
	return nil
}

// argSet marks which arguments an op/kind combination requires. Anything
// not required is forbidden; no op has optional arguments.
type argSet struct {
	index, row, col, value bool
}

func requiredArgs(op string, kind targetKind) (argSet, bool) {
	switch {
	case op == OpRender:
		return argSet{}, true
	case op == OpGet && kind == kindAddress:
		return argSet{index: true}, true
	case op == OpGet && kind == kindBoard:
		return argSet{row: true, col: true}, true
	case op == OpSet && kind == kindAddress:
		return argSet{index: true, value: true}, true
	case op == OpSet && kind == kindBoard:
		return argSet{row: true, col: true, value: true}, true
	}
	return argSet{}, false
}
