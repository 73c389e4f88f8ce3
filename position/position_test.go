package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0},
		{X: 5, Y: 7},
		{X: 9999, Y: 9999},
		{X: -3, Y: 4},
	}

	for _, p := range cases {
		got := Decode(p.Encode())
		assert.Equal(t, p, got, "round trip for %v", p)
	}

	// A negative Y is outside Decode's range: it yields the position with
	// 0 <= y < Base that has the same encoding.
	assert.Equal(t, Position{X: 2, Y: 9996}, Decode(Position{X: 3, Y: -4}.Encode()))
	assert.Equal(t, Position{X: -4, Y: 9996}, Decode(Position{X: -3, Y: -4}.Encode()))
}

func TestEncodeIsLinear(t *testing.T) {
	a := Position{X: 3, Y: 5}
	b := Position{X: -7, Y: 2}
	assert.Equal(t, a.Encode()+b.Encode(), a.Add(b).Encode())
}

func TestActionDisplacementRoundTrip(t *testing.T) {
	start := Position{X: 10, Y: 10}
	for _, a := range All {
		moved := start.Add(a.Displacement())
		back := moved.Add(start.Sub(moved))
		assert.Equal(t, start, back)
	}
}

func TestActionChar(t *testing.T) {
	assert.Equal(t, "L", Left.String())
	assert.Equal(t, "R", Right.String())
	assert.Equal(t, "U", Up.String())
	assert.Equal(t, "D", Down.String())
}

func TestStateKeyDistinguishesStates(t *testing.T) {
	s1 := State{{X: 1, Y: 1}, {X: 2, Y: 2}}
	s2 := State{{X: 1, Y: 1}, {X: 2, Y: 3}}
	require.NotEqual(t, s1.Key(), s2.Key())

	s3 := s1.Clone()
	assert.Equal(t, s1.Key(), s3.Key())
	assert.True(t, s1.Equal(s3))
}

func TestPlanString(t *testing.T) {
	p := Plan{Left, Right, Up, Down}
	assert.Equal(t, "LRUD", p.String())
}
