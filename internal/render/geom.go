package render

// Point is a 2D point in surface pixels, y down.
type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Matrix is a 2D affine transform:
//
//	| A C E |
//	| B D F |
type Matrix struct {
	A, B, C, D, E, F float32
}

func Identity() Matrix { return Matrix{A: 1, D: 1} }

func Translation(dx, dy float32) Matrix { return Matrix{A: 1, D: 1, E: dx, F: dy} }

func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Color is a straight-alpha RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// Hex converts 0xRRGGBB into an opaque Color.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: 1,
	}
}
