package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/idxguard/internal/ctxlog"
	"github.com/vk/idxguard/internal/fsutil"
)

// Loader loads scenario files of one format into the agnostic model.
// Implementations must not validate the result; LoadPath runs Validate
// once after all sources are merged.
type Loader interface {
	// Load parses every matching file under the given paths and merges
	// the results in discovery order.
	Load(ctx context.Context, paths ...string) (*Scenario, error)

	// LoadSource parses a single in-memory document. The filename is
	// used in diagnostics only.
	LoadSource(ctx context.Context, filename string, src []byte) (*Scenario, error)
}

// LoadPath loads a validated scenario from path. A file is routed to the
// loader matching its extension; a directory is searched for all known
// formats and the results are merged in lexical file order.
func LoadPath(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario path %s: %w", path, err)
	}

	var sc *Scenario
	if info.IsDir() {
		sc, err = loadDir(ctx, path)
	} else {
		sc, err = loadFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if len(sc.Addresses) == 0 && len(sc.Boards) == 0 && len(sc.Steps) == 0 {
		return nil, fmt.Errorf("no scenario content found at %s", path)
	}

	if err := Validate(sc); err != nil {
		return nil, err
	}

	logger.Debug("Scenario loaded.",
		"path", path,
		"addresses", len(sc.Addresses),
		"boards", len(sc.Boards),
		"steps", len(sc.Steps),
	)
	return sc, nil
}

func loadFile(ctx context.Context, path string) (*Scenario, error) {
	switch filepath.Ext(path) {
	case ".hcl":
		return NewHCLLoader().Load(ctx, path)
	case ".yaml", ".yml":
		return NewYAMLLoader().Load(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported scenario format %q: want .hcl, .yaml or .yml", filepath.Ext(path))
	}
}

func loadDir(ctx context.Context, dir string) (*Scenario, error) {
	merged := &Scenario{}
	for _, l := range []Loader{NewHCLLoader(), NewYAMLLoader()} {
		part, err := l.Load(ctx, dir)
		if err != nil {
			return nil, err
		}
		merge(merged, part)
	}
	return merged, nil
}

// merge appends src's declarations and steps to dst. The first non-empty
// description wins.
func merge(dst, src *Scenario) {
	if dst.Description == "" {
		dst.Description = src.Description
	}
	dst.Addresses = append(dst.Addresses, src.Addresses...)
	dst.Boards = append(dst.Boards, src.Boards...)
	dst.Steps = append(dst.Steps, src.Steps...)
}

// discover resolves loader input paths to concrete files: directories are
// walked for the given extensions, plain files pass through when their
// extension matches.
func discover(paths []string, exts ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			for _, ext := range exts {
				found, err := fsutil.FindFilesByExtension(path, ext)
				if err != nil {
					return nil, err
				}
				files = append(files, found...)
			}
			continue
		}

		for _, ext := range exts {
			if filepath.Ext(path) == ext {
				files = append(files, path)
				break
			}
		}
	}
	return files, nil
}
