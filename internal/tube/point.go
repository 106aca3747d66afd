package tube

// Point is a 2D position or difference vector on the canvas
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the component-wise difference p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the component-wise sum p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul scales both components by k
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}
