// Package position implements the compact 2-D coordinate encoding and the
// fixed action set shared by every PushWorld planner component.
package position

import "fmt"

// Base is the fixed encoding base required by the spec: encode(x, y) =
// x*Base + y. Every puzzle coordinate must satisfy 0 <= x, y < Base.
const Base = 10000

// Position is a logical grid coordinate. It is also used to represent
// relative displacements between two coordinates, which may be negative.
type Position struct {
	X, Y int
}

// Encode returns the compact integer key used for hashing and table lookups.
// Because the encoding is linear in X and Y, Encode(a+c, b+d) ==
// Encode(a, b) + Encode(c, d) holds for any signed c, d.
func (p Position) Encode() int { return p.X*Base + p.Y }

// Decode inverts Encode for positions with 0 <= y < Base.
func Decode(e int) Position {
	y := e % Base
	x := (e - y) / Base
	if y < 0 {
		y += Base
		x--
	}
	return Position{X: x, Y: y}
}

// Add returns p translated by the displacement d.
func (p Position) Add(d Position) Position { return Position{p.X + d.X, p.Y + d.Y} }

// Sub returns the displacement from o to p, i.e. p - o.
func (p Position) Sub(o Position) Position { return Position{p.X - o.X, p.Y - o.Y} }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Action is one of the four cardinal moves available to the agent.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
)

// NumActions is the number of distinct Action values.
const NumActions = 4

// All lists every Action in a fixed, deterministic order.
var All = [NumActions]Action{Left, Right, Up, Down}

var displacements = [NumActions]Position{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Displacement returns the (dx, dy) translation caused by performing a.
func (a Action) Displacement() Position { return displacements[a] }

var actionChars = [NumActions]byte{'L', 'R', 'U', 'D'}

// Char returns the one-character process-interface code for a (§6).
func (a Action) Char() byte { return actionChars[a] }

func (a Action) String() string { return string(a.Char()) }

// State is the ordered position of every object in a puzzle. Index 0 is
// always the agent.
type State []Position

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two states have identical object positions.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Key returns a compact, comparable representation of s suitable for use as
// a map key (e.g. a visited-state set).
func (s State) Key() string {
	buf := make([]byte, 0, len(s)*6)
	for i, p := range s {
		if i > 0 {
			buf = append(buf, '_')
		}
		buf = appendInt(buf, p.Encode())
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// RelativeState is a State plus the indices of the objects whose positions
// differ from some prior reference state.
type RelativeState struct {
	State State
	Moved []int
}

// Goal is the ordered list of desired positions; element k is the target of
// object k+1 in a State (the agent, index 0, never has a goal).
type Goal []Position

// Plan is an ordered sequence of actions.
type Plan []Action

// String renders a plan using the one-character action codes of §6.
func (p Plan) String() string {
	buf := make([]byte, len(p))
	for i, a := range p {
		buf[i] = a.Char()
	}
	return string(buf)
}
