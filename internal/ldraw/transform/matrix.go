package transform

// Matrix is a fixed 3x3 integer rotation matrix applied in row-vector
// convention: out[j] = p[0]*m[0][j] + p[1]*m[1][j] + p[2]*m[2][j].
type Matrix [3][3]int

// The three 90 degree clockwise rotations, one per axis.
var (
	RotCWX = Matrix{
		{1, 0, 0},
		{0, 0, 1},
		{0, -1, 0},
	}
	RotCWY = Matrix{
		{0, 0, -1},
		{0, 1, 0},
		{1, 0, 0},
	}
	RotCWZ = Matrix{
		{0, 1, 0},
		{-1, 0, 0},
		{0, 0, 1},
	}
)

// Apply rotates one point.
func (m Matrix) Apply(p [3]float64) [3]float64 {
	return [3]float64{
		p[0]*float64(m[0][0]) + p[1]*float64(m[1][0]) + p[2]*float64(m[2][0]),
		p[0]*float64(m[0][1]) + p[1]*float64(m[1][1]) + p[2]*float64(m[2][1]),
		p[0]*float64(m[0][2]) + p[1]*float64(m[1][2]) + p[2]*float64(m[2][2]),
	}
}
