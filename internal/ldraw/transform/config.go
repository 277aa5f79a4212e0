package transform

import "fmt"

// Config is the enabled-operation set for one run, built once from
// already-parsed command line values and immutable afterwards. The zero
// value applies nothing except coordinate re-formatting.
type Config struct {
	Flip      []int    // axis indices to mirror about the box center
	Norm      bool     // shift coordinates so every axis starts at 0
	Swap      []int    // full permutation of {0,1,2}, nil to disable
	Rotations []Matrix // clockwise rotations, applied in order
	FlipFace  bool     // reverse point order, changing polygon winding
	Round     int      // decimals for emitted coordinates, negative to disable
}

var axisIndex = map[byte]int{'x': 0, 'y': 1, 'z': 2}

// ParseAxes maps an axis descriptor such as "xz" to indices in 0..2,
// preserving order and duplicates.
func ParseAxes(value string) ([]int, error) {
	axes := make([]int, 0, len(value))
	for i := 0; i < len(value); i++ {
		idx, ok := axisIndex[value[i]]
		if !ok {
			return nil, fmt.Errorf("argument should have only xyz characters, got %q", value)
		}
		axes = append(axes, idx)
	}
	return axes, nil
}

// ParseFlip maps an axis list to a set of axis indices, collapsing
// duplicates while keeping first-occurrence order.
func ParseFlip(value string) ([]int, error) {
	axes, err := ParseAxes(value)
	if err != nil {
		return nil, err
	}
	var seen [3]bool
	flip := make([]int, 0, len(axes))
	for _, a := range axes {
		if !seen[a] {
			seen[a] = true
			flip = append(flip, a)
		}
	}
	return flip, nil
}

// ParseSwap maps an axis permutation such as "zyx" to an index permutation,
// rejecting anything that is not a full permutation of xyz.
func ParseSwap(value string) ([]int, error) {
	axes, err := ParseAxes(value)
	if err != nil {
		return nil, err
	}
	var seen [3]bool
	for _, a := range axes {
		seen[a] = true
	}
	if len(axes) != 3 || !seen[0] || !seen[1] || !seen[2] {
		return nil, fmt.Errorf("argument should be a permutation of xyz, got %q", value)
	}
	return axes, nil
}

// ParseRotations maps a rotation list such as "xxz" to the ordered matrix
// sequence.
func ParseRotations(value string) ([]Matrix, error) {
	axes, err := ParseAxes(value)
	if err != nil {
		return nil, err
	}
	byAxis := [3]Matrix{RotCWX, RotCWY, RotCWZ}
	ms := make([]Matrix, len(axes))
	for i, a := range axes {
		ms[i] = byAxis[a]
	}
	return ms, nil
}
