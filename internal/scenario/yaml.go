package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/idxguard/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader loads .yaml and .yml scenario files.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML scenario loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// yamlDoc is the YAML structure of a scenario file.
type yamlDoc struct {
	Description string        `yaml:"description"`
	Addresses   []yamlAddress `yaml:"addresses"`
	Boards      []yamlBoard   `yaml:"boards"`
	Steps       []yamlStep    `yaml:"steps"`
}

type yamlAddress struct {
	Name     string `yaml:"name"`
	Text     string `yaml:"text"`
	Segments []int  `yaml:"segments"`
}

type yamlBoard struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

type yamlStep struct {
	Op     string `yaml:"op"`
	Target string `yaml:"target"`
	Index  *int   `yaml:"index"`
	Row    *int   `yaml:"row"`
	Col    *int   `yaml:"col"`
	Value  *int   `yaml:"value"`
}

// Load parses every .yaml and .yml file under the given paths and merges
// the results in discovery order.
func (l *YAMLLoader) Load(ctx context.Context, paths ...string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discover(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML scenario files.", "count", len(files))

	merged := &Scenario{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario file %s: %w", file, err)
		}

		part, err := l.LoadSource(ctx, file, src)
		if err != nil {
			return nil, err
		}
		merge(merged, part)
	}
	return merged, nil
}

// LoadSource parses a single in-memory YAML document. Unknown keys are
// errors; an empty document yields an empty scenario.
func (l *YAMLLoader) LoadSource(_ context.Context, filename string, src []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)

	var doc yamlDoc
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Scenario{}, nil
		}
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, err)
	}

	sc := &Scenario{Description: doc.Description}
	for _, a := range doc.Addresses {
		sc.Addresses = append(sc.Addresses, &AddressDecl{
			Name:     a.Name,
			Text:     a.Text,
			Segments: a.Segments,
		})
	}
	for _, b := range doc.Boards {
		sc.Boards = append(sc.Boards, &BoardDecl{Name: b.Name, Rows: b.Rows})
	}
	for _, s := range doc.Steps {
		sc.Steps = append(sc.Steps, &Step{
			Op:     s.Op,
			Target: s.Target,
			Args: Args{
				Index: s.Index,
				Row:   s.Row,
				Col:   s.Col,
				Value: s.Value,
			},
			Source: filename,
		})
	}
	return sc, nil
}
