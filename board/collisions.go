package board

import (
	"fmt"

	"pushworld/position"
)

// PixelSet is the set of pixels occupied by one object, expressed relative
// to that object's top-left corner (§4.1).
type PixelSet []position.Position

func pixelLookup(px PixelSet) map[position.Position]struct{} {
	m := make(map[position.Position]struct{}, len(px))
	for _, p := range px {
		m[p] = struct{}{}
	}
	return m
}

// pointsOverlap reports whether pusherPx, placed at offset relative to the
// pushee's frame, occupies any pixel in pusheeSet.
func pointsOverlap(pusherPx PixelSet, pusheeSet map[position.Position]struct{}, offset position.Position) bool {
	for _, p := range pusherPx {
		if _, ok := pusheeSet[offset.Add(p)]; ok {
			return true
		}
	}
	return false
}

func objectSize(px PixelSet) position.Position {
	var size position.Position
	for _, p := range px {
		if p.X+1 > size.X {
			size.X = p.X + 1
		}
		if p.Y+1 > size.Y {
			size.Y = p.Y + 1
		}
	}
	return size
}

// candidateRelatives enumerates, for every pair of pixels (one from the
// pusher, one from the pushee), the relative position pushee_px - (pusher_px
// + displacement) that would make those two pixels coincide after the
// pusher moves.
func candidateRelatives(d position.Position, pusherPx, pusheePx PixelSet) map[position.Position]struct{} {
	candidates := make(map[position.Position]struct{}, len(pusherPx)*len(pusheePx))
	for _, pp := range pusherPx {
		moved := pp.Add(d)
		for _, qp := range pusheePx {
			candidates[qp.Sub(moved)] = struct{}{}
		}
	}
	return candidates
}

// populateCollisions computes the set of relative positions pos(pusher) -
// pos(pushee) at which moving the pusher by action collides into the
// pushee (§4.1).
func populateCollisions(action position.Action, pusherPx, pusheePx PixelSet) map[int]struct{} {
	d := action.Displacement()
	candidates := candidateRelatives(d, pusherPx, pusheePx)
	pusheeSet := pixelLookup(pusheePx)

	out := make(map[int]struct{})
	for rel := range candidates {
		if !pointsOverlap(pusherPx, pusheeSet, rel) {
			out[rel.Encode()] = struct{}{}
		}
	}
	return out
}

// populateBoundedCollisions is populateCollisions with the additional
// constraint that the pusher, placed at the candidate relative position,
// lies fully inside [0, width) x [0, height).
func populateBoundedCollisions(action position.Action, pusherPx, pusheePx PixelSet, width, height int) map[int]struct{} {
	d := action.Displacement()
	size := objectSize(pusherPx)
	maxX := width - size.X
	maxY := height - size.Y

	candidates := candidateRelatives(d, pusherPx, pusheePx)
	pusheeSet := pixelLookup(pusheePx)

	out := make(map[int]struct{})
	for rel := range candidates {
		if rel.X < 0 || rel.Y < 0 || rel.X > maxX || rel.Y > maxY {
			continue
		}
		if !pointsOverlap(pusherPx, pusheeSet, rel) {
			out[rel.Encode()] = struct{}{}
		}
	}
	return out
}

// ObjectCollisions holds the precomputed, immutable collision tables for one
// puzzle (§3, §4.1). It answers, in O(1), whether moving object i via
// action a from position p collides with a wall or with object j.
type ObjectCollisions struct {
	numObjects int
	static     [position.NumActions][]map[int]struct{}
	dynamic    [position.NumActions][][]map[int]struct{}
}

func newObjectCollisions(numObjects int) *ObjectCollisions {
	oc := &ObjectCollisions{numObjects: numObjects}
	for a := 0; a < position.NumActions; a++ {
		oc.static[a] = make([]map[int]struct{}, numObjects)
		oc.dynamic[a] = make([][]map[int]struct{}, numObjects)
		for i := 0; i < numObjects; i++ {
			oc.static[a][i] = make(map[int]struct{})
			oc.dynamic[a][i] = make([]map[int]struct{}, numObjects)
			for j := 0; j < numObjects; j++ {
				oc.dynamic[a][i][j] = make(map[int]struct{})
			}
		}
	}
	return oc
}

// NumObjects returns the number of objects these tables were built for,
// agent included.
func (oc *ObjectCollisions) NumObjects() int { return oc.numObjects }

// IsStaticCollision reports whether object i, moving via a from p, hits a
// wall.
func (oc *ObjectCollisions) IsStaticCollision(a position.Action, i int, p position.Position) bool {
	_, ok := oc.static[a][i][p.Encode()]
	return ok
}

// IsDynamicCollision reports whether object i, moving via a, collides into
// object j when rel == pos(i) - pos(j).
func (oc *ObjectCollisions) IsDynamicCollision(a position.Action, i, j int, rel position.Position) bool {
	_, ok := oc.dynamic[a][i][j][rel.Encode()]
	return ok
}

// DynamicRelatives returns every relative position at which object i pushes
// object j via action a.
func (oc *ObjectCollisions) DynamicRelatives(a position.Action, i, j int) []position.Position {
	set := oc.dynamic[a][i][j]
	out := make([]position.Position, 0, len(set))
	for enc := range set {
		out = append(out, position.Decode(enc))
	}
	return out
}

// Objects describes the pixel geometry ObjectCollisions is built from.
// Pixel sets must already be expressed relative to each object's own
// top-left corner (the minimum-(x,y) pixel), per §4.1 and §6.
type Objects struct {
	AgentPixels PixelSet
	// MovablePixels[k] is the pixel set of the movable object at state
	// index k+1.
	MovablePixels []PixelSet
	// Wall is "w": walls that apply to every object.
	Wall PixelSet
	// AgentWall is "aw": walls that apply additionally to the agent only.
	AgentWall     PixelSet
	Width, Height int
}

// NewObjectCollisions builds the static and dynamic collision tables for
// one puzzle's geometry (§4.1's "Table population").
func NewObjectCollisions(o Objects) (*ObjectCollisions, error) {
	if o.Width > position.Base || o.Height > position.Base {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooLarge, o.Width, o.Height)
	}
	if len(o.AgentPixels) == 0 {
		return nil, fmt.Errorf("%w: agent", ErrEmptyObject)
	}

	numObjects := 1 + len(o.MovablePixels)
	oc := newObjectCollisions(numObjects)

	pixelsOf := func(i int) PixelSet {
		if i == 0 {
			return o.AgentPixels
		}
		return o.MovablePixels[i-1]
	}

	agentWalls := make(PixelSet, 0, len(o.Wall)+len(o.AgentWall))
	agentWalls = append(agentWalls, o.Wall...)
	agentWalls = append(agentWalls, o.AgentWall...)

	for a := 0; a < position.NumActions; a++ {
		action := position.Action(a)
		oc.static[a][0] = populateBoundedCollisions(action, o.AgentPixels, agentWalls, o.Width, o.Height)
		for m := 1; m < numObjects; m++ {
			oc.static[a][m] = populateBoundedCollisions(action, pixelsOf(m), o.Wall, o.Width, o.Height)
		}
	}

	// There is no reason to store collisions caused by objects pushing the
	// agent, since the agent is the sole actuator (§4.1).
	for a := 0; a < position.NumActions; a++ {
		action := position.Action(a)
		for pusher := 0; pusher < numObjects; pusher++ {
			for pushee := 1; pushee < numObjects; pushee++ {
				if pusher == pushee {
					continue
				}
				oc.dynamic[a][pusher][pushee] = populateCollisions(action, pixelsOf(pusher), pixelsOf(pushee))
			}
		}
	}

	return oc, nil
}
