package pwp

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"pushworld/board"
	"pushworld/position"
)

// Load reads the puzzle file at path and builds the board.Puzzle it
// describes (§6).
func Load(path string) (*board.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingFile, path, err)
	}
	defer f.Close()

	objPixels, rowCount, colCount, err := scan(f)
	if err != nil {
		return nil, err
	}
	if rowCount == 0 {
		return nil, ErrEmptyPuzzle
	}
	if _, ok := objPixels["a"]; !ok {
		return nil, ErrMissingAgent
	}

	width := colCount + 2
	height := rowCount + 2
	if width > position.Base || height > position.Base {
		return nil, fmt.Errorf("%w: %dx%d", board.ErrBoardTooLarge, width, height)
	}

	addPerimeterWalls(objPixels, width, height)

	corners := make(map[string]position.Position)
	for id, pixels := range objPixels {
		if id == "w" || id == "aw" {
			continue
		}
		corner := canonicalCorner(pixels)
		corners[id] = corner
		objPixels[id] = offset(pixels, corner)
	}

	goalIDs := sortedGoalIDs(objPixels)

	objects := []string{"a"}
	goal := make(position.Goal, 0, len(goalIDs))
	for _, gID := range goalIDs {
		mID := "m" + gID[1:]
		if _, ok := objPixels[mID]; !ok {
			return nil, fmt.Errorf("%w: %s", board.ErrGoalWithoutMovable, mID)
		}
		objects = append(objects, mID)
		goal = append(goal, corners[gID])
	}

	for _, id := range sortedKeys(objPixels) {
		if !strings.HasPrefix(id, "m") {
			continue
		}
		if contains(objects, id) {
			continue
		}
		objects = append(objects, id)
	}

	initial := make(position.State, len(objects))
	movables := make([]board.PixelSet, len(objects)-1)
	for i, id := range objects {
		initial[i] = corners[id]
		if i > 0 {
			movables[i-1] = board.PixelSet(objPixels[id])
		}
	}

	collisions, err := board.NewObjectCollisions(board.Objects{
		AgentPixels:   board.PixelSet(objPixels["a"]),
		MovablePixels: movables,
		Wall:          board.PixelSet(objPixels["w"]),
		AgentWall:     board.PixelSet(objPixels["aw"]),
		Width:         width,
		Height:        height,
	})
	if err != nil {
		return nil, err
	}

	return board.NewPuzzle(initial, goal, collisions)
}

// scan parses the grid, returning each tag's absolute pixel set, the
// number of rows, and the number of cells per row.
func scan(f *os.File) (map[string][]position.Position, int, int, error) {
	objPixels := make(map[string][]position.Position)

	scanner := bufio.NewScanner(f)
	y := 0
	colCount := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		cells := strings.Fields(line)
		if len(cells) == 0 {
			continue // ignore blank lines
		}

		y++
		if colCount == -1 {
			colCount = len(cells)
		} else if len(cells) != colCount {
			return nil, 0, 0, ErrRowWidth
		}

		for i, cell := range cells {
			x := i + 1
			for _, tag := range strings.Split(cell, "+") {
				id := strings.ToLower(tag)
				if id == "." {
					continue
				}
				objPixels[id] = append(objPixels[id], position.Position{X: x, Y: y})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	if colCount == -1 {
		colCount = 0
	}
	return objPixels, y, colCount, nil
}

func addPerimeterWalls(objPixels map[string][]position.Position, width, height int) {
	for x := 0; x < width; x++ {
		objPixels["w"] = append(objPixels["w"], position.Position{X: x, Y: 0})
		objPixels["w"] = append(objPixels["w"], position.Position{X: x, Y: height - 1})
	}
	for y := 0; y < height; y++ {
		objPixels["w"] = append(objPixels["w"], position.Position{X: 0, Y: y})
		objPixels["w"] = append(objPixels["w"], position.Position{X: width - 1, Y: y})
	}
}

func canonicalCorner(pixels []position.Position) position.Position {
	corner := pixels[0]
	for _, p := range pixels[1:] {
		if p.X < corner.X {
			corner.X = p.X
		}
		if p.Y < corner.Y {
			corner.Y = p.Y
		}
	}
	return corner
}

func offset(pixels []position.Position, corner position.Position) []position.Position {
	out := make([]position.Position, len(pixels))
	for i, p := range pixels {
		out[i] = p.Sub(corner)
	}
	return out
}

// sortedGoalIDs returns every "g..." tag in alphabetical order, so that
// goal ordering (and thus state-index assignment) is deterministic.
func sortedGoalIDs(objPixels map[string][]position.Position) []string {
	var ids []string
	for id := range objPixels {
		if strings.HasPrefix(id, "g") {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func sortedKeys(objPixels map[string][]position.Position) []string {
	ids := make([]string, 0, len(objPixels))
	for id := range objPixels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
