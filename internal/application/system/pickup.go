package system

import (
	"github.com/younwookim/tilecore/internal/domain/entity"
	"github.com/younwookim/tilecore/internal/domain/geometry"
)

// CollectGems splits gems into those still in play and those overlapping
// the collector bounds. The remaining gems keep their order and reuse the
// backing array of gems.
func CollectGems(gems []*entity.Gem, collector geometry.Rect) (remaining, collected []*entity.Gem) {
	remaining = gems[:0]
	for _, g := range gems {
		if g.CollectedBy(collector) {
			collected = append(collected, g)
			continue
		}
		remaining = append(remaining, g)
	}
	return remaining, collected
}
