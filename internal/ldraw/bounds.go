package ldraw

import "math"

// Range is a closed [Min, Max] interval on one axis.
type Range struct {
	Min float64
	Max float64
}

// Bounds is the axis-aligned bounding box over every coordinate observed so
// far, one Range per axis (0=x, 1=y, 2=z). A fresh Bounds is empty, with Min
// above Max on every axis.
type Bounds [3]Range

// NewBounds returns an empty bounding box.
func NewBounds() Bounds {
	var b Bounds
	for i := range b {
		b[i] = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	}
	return b
}

// Empty reports whether no point has been observed yet. Coordinates arrive
// in whole 3-tuples, so checking one axis is enough.
func (b Bounds) Empty() bool {
	return b[0].Min > b[0].Max
}

// observe folds a flat coordinate list into the box. The list is strided:
// positions {0,3,6,..} are axis 0, {1,4,7,..} axis 1, {2,5,8,..} axis 2.
func (b *Bounds) observe(coords []float64) {
	for i, v := range coords {
		axis := i % 3
		if v < b[axis].Min {
			b[axis].Min = v
		}
		if v > b[axis].Max {
			b[axis].Max = v
		}
	}
}

// Stats is the result of the measurement pass: total line count,
// per-linetype occurrence counts and the model bounding box.
type Stats struct {
	Lines  int
	Counts map[int]int
	Bounds Bounds
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{Counts: make(map[int]int), Bounds: NewBounds()}
}

// Observe accumulates one classified record. Counting keys on the leading
// numeric token, so a shape line with a bad color token still counts under
// its line type even though it was downgraded to Raw. Observation order does
// not matter; min/max folding is commutative.
func (s *Stats) Observe(rec Record) {
	s.Lines++
	if rec.HasLineType {
		s.Counts[rec.LineType]++
	}
	if rec.Kind == KindShape {
		s.Bounds.observe(rec.Coords)
	}
}
