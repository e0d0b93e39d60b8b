package icosphere_test

import (
	"fmt"
	"testing"

	"github.com/Ashaniekam/landlab/icosphere"
)

// BenchmarkNew measures the full construction pipeline at increasing
// densification levels (level 4: 2562 nodes, 7680 links, 5120 patches).
func BenchmarkNew(b *testing.B) {
	for _, level := range []int{0, 2, 4} {
		b.Run(fmt.Sprintf("Level%d", level), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := icosphere.New(icosphere.WithDensificationLevel(level)); err != nil {
					b.Fatalf("New failed: %v", err)
				}
			}
		})
	}
}
