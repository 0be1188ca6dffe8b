// Package geom holds the geometry kernel and the curve/shape model.
//
// Every transform in the program is composed from Scale and Translate so
// that the order of operations stays visible at the call site.
package geom

// Scale multiplies both components of v by f.
func Scale(v Point, f float64) Point {
	return v.Mul(f)
}

// Translate adds u to v.
func Translate(v, u Point) Point {
	return v.Add(u)
}

// ToInt truncates both components toward zero.
func ToInt(v Point) IntPoint {
	return IntPoint{X: int64(v.X), Y: int64(v.Y)}
}

// Curve is a quadratic Bezier segment in local shape space.
type Curve struct {
	From    Point
	To      Point
	Control Point
}

// At evaluates the curve at parameter t:
// B(t) = control + (1-t)²(from-control) + t²(to-control).
func (c Curve) At(t float64) Point {
	neg := Scale(c.Control, -1)
	a := Scale(Translate(c.From, neg), (1-t)*(1-t))
	b := Scale(Translate(c.To, neg), t*t)
	return Translate(Translate(c.Control, a), b)
}

// Transform scales the curve's points by s and then moves them by d.
func (c Curve) Transform(s float64, d Point) Curve {
	return Curve{
		From:    Translate(Scale(c.From, s), d),
		To:      Translate(Scale(c.To, s), d),
		Control: Translate(Scale(c.Control, s), d),
	}
}

// Shape is an ordered list of curves. Shapes are shared by pointer
// between objects and must not be modified once objects refer to them.
type Shape struct {
	Curves []Curve
}

// Len returns the number of curves.
func (s *Shape) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Curves)
}

// DefaultShape returns the built-in template: a unit circle made of four
// quarter arcs, crossed by two diagonals.
func DefaultShape() *Shape {
	return &Shape{Curves: []Curve{
		{From: Point{X: 1, Y: 0}, To: Point{X: 0, Y: 1}, Control: Point{X: 1, Y: 1}},
		{From: Point{X: 0, Y: 1}, To: Point{X: -1, Y: 0}, Control: Point{X: -1, Y: 1}},
		{From: Point{X: -1, Y: 0}, To: Point{X: 0, Y: -1}, Control: Point{X: -1, Y: -1}},
		{From: Point{X: 0, Y: -1}, To: Point{X: 1, Y: 0}, Control: Point{X: 1, Y: -1}},

		{From: Point{X: -0.75, Y: -0.75}, To: Point{X: 0.75, Y: 0.75}},
		{From: Point{X: -0.75, Y: 0.75}, To: Point{X: 0.75, Y: -0.75}},
	}}
}
