package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// createBenchStage returns a long corridor with n patrolling enemies and
// a gem above each of them
func createBenchStage(n int) *config.StageConfig {
	width := n * 4
	rows := []string{
		strings.Repeat(".", width),
		"#" + strings.Repeat(".", width-2) + "#",
		strings.Repeat("#", width),
	}
	stage := &config.StageConfig{
		ID:     "bench",
		Size:   config.StageSizeConfig{TileWidth: 64, TileHeight: 48},
		Layers: config.LayersConfig{Collision: rows},
	}
	for i := 0; i < n; i++ {
		x := 2 + i*4
		stage.Enemies = append(stage.Enemies, config.EnemySpawnConfig{SpriteSet: "MonsterA", X: x, Y: 1})
		stage.Gems = append(stage.Gems, config.PositionConfig{X: x, Y: 0})
	}
	return stage
}

func benchmarkUpdate(b *testing.B, enemies int) {
	w, err := New(createTestTuning(), createBenchStage(enemies), createTestLibrary(b))
	require.NoError(b, err)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := w.Update(testDT); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdate_10(b *testing.B)   { benchmarkUpdate(b, 10) }
func BenchmarkUpdate_100(b *testing.B)  { benchmarkUpdate(b, 100) }
func BenchmarkUpdate_1000(b *testing.B) { benchmarkUpdate(b, 1000) }
