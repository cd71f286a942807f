package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilecore/internal/domain/geometry"
)

func createTestGemTuning() GemTuning {
	return GemTuning{
		Radius:       64.0 / 3.0,
		BounceHeight: 5.76,
		BounceRate:   3.0,
		BounceSync:   -0.75,
	}
}

func TestNewGem_StillGem(t *testing.T) {
	g := NewGem(3, geometry.Vector{X: 100, Y: 100}, GemTuning{Radius: 20})

	assert.Equal(t, EntityID(3), g.ID)
	assert.Equal(t, geometry.Vector{X: 100, Y: 100}, g.Position())

	g.Update(1.0)
	assert.Equal(t, g.BasePosition(), g.Position())
}

func TestNewGem_StartsInPhase(t *testing.T) {
	tuning := createTestGemTuning()

	for _, x := range []float64{0, 32, 96, 160, 1000} {
		g := NewGem(1, geometry.Vector{X: x, Y: 200}, tuning)
		want := tuning.BounceHeight * math.Sin(x*tuning.BounceSync)
		assert.InDelta(t, want, g.Position().Y-200, 1e-3, "x=%v", x)
	}
}

func TestGem_BobStaysWithinHeight(t *testing.T) {
	tuning := createTestGemTuning()
	g := NewGem(1, geometry.Vector{X: 96, Y: 200}, tuning)

	seenUp, seenDown := false, false
	for i := 0; i < 600; i++ {
		g.Update(1.0 / 60.0)
		offset := g.Position().Y - 200
		require.LessOrEqual(t, math.Abs(offset), tuning.BounceHeight+1e-3)
		if offset > tuning.BounceHeight*0.9 {
			seenDown = true
		}
		if offset < -tuning.BounceHeight*0.9 {
			seenUp = true
		}
		assert.Equal(t, 96.0, g.Position().X)
	}
	assert.True(t, seenUp)
	assert.True(t, seenDown)
}

func TestGem_BobKeepsPhaseOverTime(t *testing.T) {
	tuning := createTestGemTuning()
	want := func(x, elapsed float64) float64 {
		return tuning.BounceHeight * math.Sin(tuning.BounceRate*elapsed+x*tuning.BounceSync)
	}

	for _, x := range []float64{32, 96, 160, 416} {
		g := NewGem(1, geometry.Vector{X: x, Y: 200}, tuning)
		for i := 1; i <= 3600; i++ {
			g.Update(1.0 / 60.0)
			if i%300 == 0 {
				assert.InDelta(t, want(x, float64(i)/60.0), g.Position().Y-200, 1e-2, "x=%v tick=%d", x, i)
			}
		}
	}
}

func TestGem_BobLongStep(t *testing.T) {
	tuning := createTestGemTuning()
	g := NewGem(1, geometry.Vector{X: 96, Y: 200}, tuning)

	// One step spanning several half-swings
	g.Update(2.5)

	want := tuning.BounceHeight * math.Sin(tuning.BounceRate*2.5+96*tuning.BounceSync)
	assert.InDelta(t, want, g.Position().Y-200, 1e-3)
}

func TestGem_BoundingCircle(t *testing.T) {
	g := NewGem(1, geometry.Vector{X: 100, Y: 100}, GemTuning{Radius: 20})

	c := g.BoundingCircle()
	assert.Equal(t, geometry.Vector{X: 100, Y: 100}, c.Center)
	assert.Equal(t, 20.0, c.Radius)
}

func TestGem_CollectedBy(t *testing.T) {
	g := NewGem(1, geometry.Vector{X: 100, Y: 100}, GemTuning{Radius: 20})

	tests := []struct {
		name   string
		bounds geometry.Rect
		want   bool
	}{
		{name: "collector beside gem", bounds: geometry.NewRect(110, 90, 20, 40), want: true},
		{name: "collector below gem", bounds: geometry.NewRect(80, 115, 40, 40), want: true},
		{name: "collector far away", bounds: geometry.NewRect(300, 300, 20, 40), want: false},
		{name: "collector exactly one radius away", bounds: geometry.NewRect(120, 90, 20, 40), want: false},
		{name: "gem center inside collector", bounds: geometry.NewRect(90, 90, 20, 20), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.CollectedBy(tt.bounds))
		})
	}
}
