package colors

import (
	"fmt"
	"math"

	"github.com/jonathan/lifegrid/internal/types"
)

// GeneratePalette builds the default palette when the caller supplies none:
// one color per distinct milestone date plus a starting color, so every
// milestone crossing lands on a fresh palette entry. Hues step around the
// wheel by the golden angle from a fixed starting hue, which keeps adjacent
// life phases visually distinct and the output fully deterministic.
func GeneratePalette(events types.EventMapping) []string {
	count := 0
	for _, list := range events {
		if hasPersonalMilestone(list) {
			count++
		}
	}

	palette := make([]string, count+1)
	for i := range palette {
		hue := math.Mod(210+float64(i)*137.5, 360)
		palette[i] = hslToHex(hue, 0.55, 0.62)
	}
	return palette
}

// hslToHex converts an HSL color (h in degrees, s and l in [0,1]) to a
// #rrggbb string.
func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
