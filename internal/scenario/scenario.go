package scenario

// Step op names.
const (
	OpGet    = "get"
	OpSet    = "set"
	OpRender = "render"
)

// Scenario is the format-agnostic model of a demonstration script.
type Scenario struct {
	Description string
	Addresses   []*AddressDecl
	Boards      []*BoardDecl
	Steps       []*Step
}

// AddressDecl declares a named four-segment address. Exactly one of Text
// or Segments must be set; Validate enforces that, construction happens
// at run time.
type AddressDecl struct {
	Name     string
	Text     string
	Segments []int
}

// BoardDecl declares a named 9x9 board and its starting rows. The rows
// are handed to the board as-is; shape problems surface when the board
// is built.
type BoardDecl struct {
	Name string
	Rows [][]int
}

// Step is a single operation against a declared container. Source is a
// best-effort provenance hint (file and position) for diagnostics.
type Step struct {
	Op     string
	Target string
	Args   Args
	Source string
}

// Args carries step arguments. Pointers distinguish an absent argument
// from a zero one; which fields must be set depends on the op and on the
// kind of the target.
type Args struct {
	Index *int
	Row   *int
	Col   *int
	Value *int
}
