// Package scenario defines the format-agnostic model for demonstration
// scripts, along with the Loader interface and its HCL and YAML
// implementations.
//
// A scenario declares named containers (addresses and boards) and an
// ordered list of steps applied to them. Validate checks structure only:
// ops must be known, targets declared, arguments present for the op and
// target kind. Argument ranges are deliberately left unchecked so that
// out-of-range indexes and values reach the containers at run time.
package scenario
