// ABOUTME: Level colors and the memoizing renderer for utilization bars
// ABOUTME: Reuses rendered fragments for readings that render identically

package components

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/markalston/campboard/internal/cache"
	"github.com/markalston/campboard/internal/utilization"
)

const barTrackClasses = "w-full h-2 bg-gray-200 rounded-full overflow-hidden"

// LevelClasses maps each level to its fill color class
var LevelClasses = map[utilization.Level]string{
	utilization.OverCapacity: "bg-red-600",
	utilization.High:         "bg-orange-500",
	utilization.Elevated:     "bg-yellow-400",
	utilization.Healthy:      "bg-green-500",
}

// formatWidth renders a fill width with no trailing zeros (42, 89.9, -5)
func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// fillStyle is the inline width of the bar fill
func fillStyle(r utilization.Reading) string {
	return "width: " + formatWidth(utilization.FillWidth(r.Utilization)) + "%"
}

// barKey identifies a rendered fragment. Utilization is keyed by its bit
// pattern with every NaN folded into one, so NaN readings memoize too.
type barKey struct {
	bits      uint64
	occupancy int
	capacity  int
}

func keyOf(r utilization.Reading) barKey {
	u := r.Utilization
	if math.IsNaN(u) {
		u = math.NaN()
	}
	return barKey{bits: math.Float64bits(u), occupancy: r.Occupancy, capacity: r.Capacity}
}

// BarRenderer renders utilization bars and reuses the output for identical
// readings.
type BarRenderer struct {
	cache   *cache.Cache[barKey, string]
	renders atomic.Int64
}

// NewBarRenderer creates a renderer whose memoized fragments live for ttl.
// A ttl <= 0 keeps fragments until Close.
func NewBarRenderer(ttl time.Duration) *BarRenderer {
	return &BarRenderer{
		cache: cache.New[barKey, string](ttl),
	}
}

// Render returns the HTML fragment for r, rendering only on a cache miss.
func (br *BarRenderer) Render(ctx context.Context, r utilization.Reading) (string, error) {
	return br.cache.GetOrCompute(keyOf(r), func() (string, error) {
		br.renders.Add(1)
		var buf bytes.Buffer
		if err := UtilizationBar(r).Render(ctx, &buf); err != nil {
			return "", fmt.Errorf("render utilization bar: %w", err)
		}
		return buf.String(), nil
	})
}

// Renders returns how many fragments were actually rendered
func (br *BarRenderer) Renders() int64 {
	return br.renders.Load()
}

// Cached returns the number of memoized fragments
func (br *BarRenderer) Cached() int {
	return br.cache.Len()
}

// Close stops cache cleanup
func (br *BarRenderer) Close() {
	br.cache.Close()
}
