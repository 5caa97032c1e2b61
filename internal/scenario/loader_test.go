package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tourHCL = `
description = "tour"

address "gateway" {
	text = "10.0.0.1"
}

board "puzzle" {
	rows = [
		[1, 2],
	]
}

step "get" "gateway" {
	index = 0
}

step "render" "puzzle" {}
`

const tourYAML = `
description: tour

addresses:
  - name: gateway
    text: 10.0.0.1

boards:
  - name: puzzle
    rows:
      - [1, 2]

steps:
  - op: get
    target: gateway
    index: 0
  - op: render
    target: puzzle
`

func TestLoadPath_SingleHCLFile(t *testing.T) {
	t.Parallel()

	path := writeScenarioFile(t, t.TempDir(), "tour.hcl", tourHCL)

	sc, err := LoadPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "tour", sc.Description)
	assert.Len(t, sc.Steps, 2)
}

func TestLoadPath_SingleYAMLFile(t *testing.T) {
	t.Parallel()

	path := writeScenarioFile(t, t.TempDir(), "tour.yaml", tourYAML)

	sc, err := LoadPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "tour", sc.Description)
	assert.Len(t, sc.Steps, 2)
}

func TestLoadPath_FormatsAreEquivalent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fromHCL, err := NewHCLLoader().LoadSource(ctx, "tour.hcl", []byte(tourHCL))
	require.NoError(t, err)
	fromYAML, err := NewYAMLLoader().LoadSource(ctx, "tour.yaml", []byte(tourYAML))
	require.NoError(t, err)

	if diff := cmp.Diff(fromHCL, fromYAML, ignoreSource); diff != "" {
		t.Errorf("formats disagree (-hcl +yaml):\n%s", diff)
	}
}

func TestLoadPath_DirectoryMergesFormats(t *testing.T) {
	t.Parallel()

	// Declarations in HCL, extra steps in YAML: cross-format references
	// must survive the merge.
	dir := t.TempDir()
	writeScenarioFile(t, dir, "decls.hcl", `
	board "puzzle" {
		rows = [[1]]
	}
	`)
	writeScenarioFile(t, dir, "steps.yaml", `
steps:
  - op: get
    target: puzzle
    row: 0
    col: 0
`)

	sc, err := LoadPath(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, sc.Boards, 1)
	assert.Len(t, sc.Steps, 1)
}

func TestLoadPath_Failure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		setup       func(t *testing.T) string
		errContains string
	}{
		{
			name: "missing path",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.hcl")
			},
			errContains: "scenario path",
		},
		{
			name: "unsupported extension",
			setup: func(t *testing.T) string {
				return writeScenarioFile(t, t.TempDir(), "tour.toml", "x = 1")
			},
			errContains: "unsupported scenario format",
		},
		{
			name: "empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			errContains: "no scenario content",
		},
		{
			name: "validation failure propagates",
			setup: func(t *testing.T) string {
				return writeScenarioFile(t, t.TempDir(), "bad.hcl", `
				step "render" "ghost" {}
				`)
			},
			errContains: "undeclared container",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadPath(context.Background(), tc.setup(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
