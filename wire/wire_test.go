package wire

import (
	"testing"

	aoc "github.com/maisem/aoc2019"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Wire {
	t.Helper()
	w, err := Parse(text)
	require.NoError(t, err)
	return w
}

func TestParse(t *testing.T) {
	w := mustParse(t, "U8,R4")
	assert.Equal(t, []aoc.Pt{{X: 0, Y: 0}, {X: 0, Y: 8}, {X: 4, Y: 8}}, w.Points())

	w = mustParse(t, "R75,D30,L12\n")
	assert.Equal(t, []aoc.Pt{{X: 0, Y: 0}, {X: 75, Y: 0}, {X: 75, Y: -30}, {X: 63, Y: -30}}, w.Points())

	w = mustParse(t, "")
	assert.Equal(t, []aoc.Pt{{}}, w.Points())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"X3", ErrDirection},
		{"U3,,R1", ErrDirection},
		{"U", ErrDistance},
		{"Ux", ErrDistance},
		{"U0", ErrDistance},
		{"U-2", ErrDistance},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		assert.ErrorIs(t, err, tt.want, "Parse(%q)", tt.in)
	}
}

func TestCrossOvers(t *testing.T) {
	a := mustParse(t, "R8,U5,L5,D3")
	b := mustParse(t, "U7,R6,D4,L4")
	assert.Equal(t, []aoc.Pt{{X: 6, Y: 5}, {X: 3, Y: 3}}, a.CrossOvers(b))
	assert.Equal(t, []aoc.Pt{{X: 6, Y: 5}, {X: 3, Y: 3}}, b.CrossOvers(a))
	assert.Equal(t, []aoc.Pt{{X: 1, Y: 1}}, mustParse(t, "U1,R2").CrossOvers(mustParse(t, "R1,U2,L1")))

	assert.Empty(t, mustParse(t, "U1").CrossOvers(mustParse(t, "D1")))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 6, Distance(aoc.Pt{}, aoc.Pt{X: 3, Y: 3}))
	assert.Equal(t, 7, Distance(aoc.Pt{X: -2, Y: 1}, aoc.Pt{X: 1, Y: -3}))
}

func TestStepsTo(t *testing.T) {
	a := mustParse(t, "R8,U5,L5,D3")
	n, ok := a.StepsTo(aoc.Pt{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, 20, n)

	_, ok = a.StepsTo(aoc.Pt{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestClosestAndFewestSteps(t *testing.T) {
	tests := []struct {
		a, b      string
		wantDist  int
		wantSteps int
	}{
		{
			a:         "R8,U5,L5,D3",
			b:         "U7,R6,D4,L4",
			wantDist:  6,
			wantSteps: 30,
		},
		{
			a:         "R75,D30,R83,U83,L12,D49,R71,U7,L72",
			b:         "U62,R66,U55,R34,D71,R55,D58,R83",
			wantDist:  159,
			wantSteps: 610,
		},
		{
			a:         "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			b:         "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
			wantDist:  135,
			wantSteps: 410,
		},
	}
	for _, tt := range tests {
		a, b := mustParse(t, tt.a), mustParse(t, tt.b)
		d, ok := Closest(a, b)
		require.True(t, ok)
		assert.Equal(t, tt.wantDist, d)

		s, ok := FewestSteps(a, b)
		require.True(t, ok)
		assert.Equal(t, tt.wantSteps, s)
	}

	_, ok := Closest(mustParse(t, "U1"), mustParse(t, "D1"))
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	a := mustParse(t, "R8,U5,L5,D3")
	b := mustParse(t, "U7,R6,D4,L4")
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "example", []byte(Render(a, b).String()))
}

func TestRenderSingle(t *testing.T) {
	got := Render(mustParse(t, "L2,U1")).String()
	assert.Equal(t, ""+
		".....\n"+
		".|...\n"+
		".+-o.\n"+
		".....\n", got)
}
