// Package file implements the unlock gate over a TOML state file
// maintained by the course guide. The file is the single source of
// truth for which modules the student has unlocked.
package file

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Gate implements the interface.
var _ driven.UnlockGate = (*Gate)(nil)

// unlockState is the on-disk TOML format.
//
//	unlocked = ["module_1", "module_2"]
type unlockState struct {
	Unlocked []string `toml:"unlocked"`
}

// Gate reads unlock state from a TOML file on every call. Nothing is
// cached: a stale answer would leak locked content into the index.
type Gate struct {
	path string
}

// NewGate creates a gate backed by the TOML file at path.
func NewGate(path string) *Gate {
	return &Gate{path: path}
}

// ListUnlockedIDs returns the identifiers of all currently unlocked
// course documents, in the order they appear in the state file. A
// missing file means nothing is unlocked yet.
func (g *Gate) ListUnlockedIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	state, err := g.read()
	if err != nil {
		return nil, err
	}
	return state.Unlocked, nil
}

// IsUnlocked reports whether a single course document is unlocked.
func (g *Gate) IsUnlocked(ctx context.Context, id string) (bool, error) {
	ids, err := g.ListUnlockedIDs(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Path returns the unlock-state file path.
func (g *Gate) Path() string {
	return g.path
}

func (g *Gate) read() (unlockState, error) {
	var state unlockState

	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return state, fmt.Errorf("read unlock state: %w", err)
	}

	if err := toml.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("parse unlock state: %w", err)
	}
	return state, nil
}
