package render

import "github.com/plotive/plotive/geom"

// applyDash splits a polyline into the "on" spans of a dash pattern.
// A nil dash returns the polyline unchanged.
func applyDash(pts []geom.Point, d *Dash) [][]geom.Point {
	if d == nil || len(pts) < 2 {
		return [][]geom.Point{pts}
	}
	cycle := d.cycle()
	if d.length() <= 0 {
		return [][]geom.Point{pts}
	}

	// Walk the pattern to the normalized offset.
	idx := 0
	left := cycle[0]
	rem := d.normalizedOffset()
	for rem > 0 {
		if rem < left {
			left -= rem
			break
		}
		rem -= left
		idx = (idx + 1) % len(cycle)
		left = cycle[idx]
	}
	on := idx%2 == 0

	var out [][]geom.Point
	var cur []geom.Point
	if on {
		cur = append(cur, pts[0])
	}
	emit := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			cut := a.Lerp(b, pos/segLen)
			if on {
				cur = append(cur, cut)
				emit()
			} else {
				cur = append(cur, cut)
			}
			on = !on
			idx = (idx + 1) % len(cycle)
			left = cycle[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	emit()
	return out
}
