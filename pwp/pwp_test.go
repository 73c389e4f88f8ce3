package pwp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pushworld/position"
)

func writePuzzle(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.pwp")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSimplePuzzle(t *testing.T) {
	path := writePuzzle(t, `
. . . .
. a M1 .
. . G1 .
. . . .
`)
	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumObjects())
	assert.Len(t, p.Goal, 1)
}

func TestLoadRejectsMismatchedRowWidths(t *testing.T) {
	path := writePuzzle(t, `
. . .
. a
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrRowWidth)
}

func TestLoadRejectsMissingAgent(t *testing.T) {
	path := writePuzzle(t, `
. . .
. . .
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissingAgent)
}

func TestLoadRejectsGoalWithoutMovable(t *testing.T) {
	path := writePuzzle(t, `
. . .
. a .
. g1 .
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.pwp"))
	assert.ErrorIs(t, err, ErrMissingFile)
}

func TestLoadSurroundsWithPerimeterWalls(t *testing.T) {
	path := writePuzzle(t, `
a
`)
	p, err := Load(path)
	require.NoError(t, err)

	// A 1x1 interior becomes a 3x3 board once walled; the agent at (1,1)
	// should be boxed in on every side.
	for _, a := range position.All {
		assert.True(t, p.Collisions.IsStaticCollision(a, 0, position.Position{X: 1, Y: 1}))
	}
}

func TestLoadMetaMissingSidecarIsNotAnError(t *testing.T) {
	path := writePuzzle(t, "a")
	meta, err := LoadMeta(path)
	require.NoError(t, err)
	assert.Empty(t, meta.Name)
}
