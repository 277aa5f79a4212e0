// Package transform applies the fixed-order geometric operation pipeline to
// classified LDraw records: flip, normalize, swap, rotate, winding reversal
// and optional rounding.
package transform

import (
	"math"

	"github.com/vhermecz/ldtweak/internal/ldraw"
)

// Apply runs the operation pipeline over one record. Non-shape records pass
// through untouched. Per 3-tuple point the order is always flip, normalize,
// swap, rotate, regardless of flag order on the command line. Winding
// reversal and rounding run once per record after every point is
// transformed. Flip and normalize read the bounding box of the original,
// untransformed model; with an empty box both are skipped.
//
// Known issue: because rotation runs after normalization but the box is
// computed over original coordinates, a rotated [0..v] range can land at
// [-v..0]. The behaviour is load-bearing for existing models and covered by
// a regression test.
func Apply(rec ldraw.Record, bounds ldraw.Bounds, cfg Config) ldraw.Record {
	if rec.Kind != ldraw.KindShape {
		return rec
	}

	points := make([][3]float64, len(rec.Coords)/3)
	for i := range points {
		copy(points[i][:], rec.Coords[i*3:i*3+3])
	}

	for i, p := range points {
		if len(cfg.Flip) > 0 && !bounds.Empty() {
			for _, axis := range cfg.Flip {
				p[axis] = bounds[axis].Min + bounds[axis].Max - p[axis]
			}
		}
		if cfg.Norm && !bounds.Empty() {
			for axis := range p {
				p[axis] -= bounds[axis].Min
			}
		}
		if len(cfg.Swap) == 3 {
			p = [3]float64{p[cfg.Swap[0]], p[cfg.Swap[1]], p[cfg.Swap[2]]}
		}
		for _, m := range cfg.Rotations {
			p = m.Apply(p)
		}
		points[i] = p
	}

	if cfg.FlipFace {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	out := rec
	out.Coords = make([]float64, 0, len(rec.Coords))
	for _, p := range points {
		if cfg.Round >= 0 {
			for axis := range p {
				p[axis] = roundTo(p[axis], cfg.Round)
			}
		}
		out.Coords = append(out.Coords, p[0], p[1], p[2])
	}
	return out
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
