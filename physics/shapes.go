package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// Segments used for each half circle when a round shape is turned into a polygon.
const arcSegments = 6

type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
	ShapeCapsule
	ShapePolygon
)

// Shape is a convex collider in body-local coordinates, centred on the body
// origin, +Y up. Round shapes are carried as polygons so every contact goes
// through the same SAT path.
type Shape struct {
	Kind   ShapeKind
	Points []Vec2
}

func Rectangle(w, h float64) Shape {
	hw, hh := w/2, h/2
	return Shape{
		Kind: ShapeRectangle,
		Points: []Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		},
	}
}

func Circle(radius float64) Shape {
	n := arcSegments * 2
	points := make([]Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Vec2{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return Shape{Kind: ShapeCircle, Points: points}
}

// Capsule is a vertical capsule: a length-tall rectangle capped by two half
// circles of the given radius.
func Capsule(radius, length float64) Shape {
	half := length / 2
	points := make([]Vec2, 0, 2*(arcSegments+1))
	// bottom cap, left to right
	for i := 0; i <= arcSegments; i++ {
		a := math.Pi + math.Pi*float64(i)/float64(arcSegments)
		points = append(points, Vec2{X: radius * math.Cos(a), Y: -half + radius*math.Sin(a)})
	}
	// top cap, right to left
	for i := 0; i <= arcSegments; i++ {
		a := math.Pi * float64(i) / float64(arcSegments)
		points = append(points, Vec2{X: radius * math.Cos(a), Y: half + radius*math.Sin(a)})
	}
	return Shape{Kind: ShapeCapsule, Points: points}
}

// Polygon builds a convex polygon from body-local points in counter-clockwise order.
func Polygon(points ...Vec2) Shape {
	cp := make([]Vec2, len(points))
	copy(cp, points)
	return Shape{Kind: ShapePolygon, Points: cp}
}

// Scaled returns a copy of s scaled about the body origin.
func (s Shape) Scaled(factor float64) Shape {
	points := make([]Vec2, len(s.Points))
	for i, p := range s.Points {
		points[i] = Vec2{X: p.X * factor, Y: p.Y * factor}
	}
	return Shape{Kind: s.Kind, Points: points}
}

// Extents returns the half width and half height of the shape's bounding box
// around the body origin.
func (s Shape) Extents() (hw, hh float64) {
	for _, p := range s.Points {
		hw = math.Max(hw, math.Abs(p.X))
		hh = math.Max(hh, math.Abs(p.Y))
	}
	return hw, hh
}

// Area of the polygon (shoelace formula).
func (s Shape) Area() float64 {
	var sum float64
	n := len(s.Points)
	for i := 0; i < n; i++ {
		a, b := s.Points[i], s.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// resolvPolygon converts s into a resolv polygon whose points are relative to
// the top-left of the shape's bounding box in space coordinates (+Y down).
func (s Shape) resolvPolygon() *resolv.ConvexPolygon {
	hw, hh := s.Extents()
	flat := make([]float64, 0, len(s.Points)*2)
	// resolv's +Y points down, which mirrors the winding; walk the points
	// backwards to keep it consistent.
	for i := len(s.Points) - 1; i >= 0; i-- {
		p := s.Points[i]
		flat = append(flat, p.X+hw, hh-p.Y)
	}
	return resolv.NewConvexPolygon(0, 0, flat...)
}
