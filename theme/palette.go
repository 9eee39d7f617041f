package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ExtendSeries extends a series color cycle to n entries. Additional
// colors are generated in HCL space by rotating the hue between the
// existing anchors, which keeps perceived lightness and chroma close to
// the original cycle. The result is deterministic.
func ExtendSeries(cycle []RGBA, n int) []RGBA {
	if n <= len(cycle) || len(cycle) == 0 {
		return cycle
	}
	out := make([]RGBA, 0, n)
	out = append(out, cycle...)

	// Average chroma and lightness of the existing cycle anchor the
	// generated colors.
	var sumC, sumL float64
	hues := make([]float64, len(cycle))
	for i, c := range cycle {
		h, cc, l := toColorful(c).Hcl()
		hues[i] = h
		sumC += cc
		sumL += l
	}
	meanC := sumC / float64(len(cycle))
	meanL := sumL / float64(len(cycle))

	// Spread extra hues evenly around the wheel, offset from the first
	// anchor so they interleave with the originals.
	extra := n - len(cycle)
	for i := 0; i < extra; i++ {
		h := math.Mod(hues[0]+360*(float64(i)+0.5)/float64(extra+1), 360)
		c := colorful.Hcl(h, meanC, meanL).Clamped()
		out = append(out, fromColorful(c))
	}
	return out
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}
