package physics

import (
	"math"
	"sort"

	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	tagSolid  = "solid"
	tagSensor = "sensor"
)

const (
	resolveIterations = 4
	maxSubsteps       = 32

	// castStep is the sampling stride of a shape cast before bisection.
	castStep = 1.0
	// castPrecision is the width the bisection narrows a hit distance down to.
	castPrecision = 0.01
)

type SpaceOptions struct {
	// World bounds in units, centred on the origin.
	Width, Height int
	CellSize      int
	Gravity       Vec2
	// Largest distance a dynamic body moves per collision sub-step.
	MaxSubstep float64
}

type body struct {
	id     BodyID
	def    BodyDef
	pos    Vec2
	vel    Vec2
	mass   float64
	hw, hh float64
	obj    *resolv.Object
	poly   *resolv.ConvexPolygon
}

// Space is a World backed by a resolv.Space. resolv works in screen space
// (+Y down, origin top-left); Space converts at the boundary so callers see
// +Y up with the origin at the centre of the bounds.
type Space struct {
	space      *resolv.Space
	bodies     map[BodyID]*body
	order      []BodyID
	nextID     BodyID
	gravity    Vec2
	width      float64
	height     float64
	maxSubstep float64
}

var _ World = (*Space)(nil)

func NewSpace(opts SpaceOptions) *Space {
	maxSubstep := opts.MaxSubstep
	if maxSubstep <= 0 {
		maxSubstep = float64(opts.CellSize) / 4
	}
	return &Space{
		space:      resolv.NewSpace(opts.Width, opts.Height, opts.CellSize, opts.CellSize),
		bodies:     make(map[BodyID]*body),
		gravity:    opts.Gravity,
		width:      float64(opts.Width),
		height:     float64(opts.Height),
		maxSubstep: maxSubstep,
	}
}

func (s *Space) toSpace(p Vec2) (x, y float64) {
	return p.X + s.width/2, s.height/2 - p.Y
}

func fromSpace(v vector.Vector) Vec2 {
	return Vec2{X: v.X(), Y: -v.Y()}
}

func (s *Space) SpawnBody(def BodyDef) BodyID {
	s.nextID++
	hw, hh := def.Shape.Extents()
	b := &body{
		id:   s.nextID,
		def:  def,
		pos:  def.Position,
		mass: def.Material.Density * def.Shape.Area(),
		hw:   hw,
		hh:   hh,
		poly: def.Shape.resolvPolygon(),
	}

	tag := tagSolid
	if def.Kind == Sensor {
		tag = tagSensor
	}
	x, y := s.toSpace(def.Position)
	b.obj = resolv.NewObject(x-hw, y-hh, hw*2, hh*2, append([]string{tag}, def.Tags...)...)
	b.obj.SetShape(def.Shape.resolvPolygon())
	b.obj.Data = b
	s.space.Add(b.obj)
	s.sync(b)

	s.bodies[b.id] = b
	s.order = append(s.order, b.id)
	return b.id
}

func (s *Space) DespawnBody(id BodyID) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	s.space.Remove(b.obj)
	delete(s.bodies, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Space) LinearVelocity(id BodyID) Vec2 {
	if b, ok := s.bodies[id]; ok {
		return b.vel
	}
	return Vec2{}
}

func (s *Space) SetLinearVelocity(id BodyID, v Vec2) {
	if b, ok := s.bodies[id]; ok {
		b.vel = v
	}
}

func (s *Space) Position(id BodyID) Vec2 {
	if b, ok := s.bodies[id]; ok {
		return b.pos
	}
	return Vec2{}
}

func (s *Space) SetPosition(id BodyID, p Vec2) {
	if b, ok := s.bodies[id]; ok {
		b.pos = p
		s.sync(b)
	}
}

// Len reports the number of live bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

// Bodies calls fn for every body in spawn order.
func (s *Space) Bodies(fn func(id BodyID, kind BodyKind, pos Vec2, shape Shape)) {
	for _, id := range s.order {
		b := s.bodies[id]
		fn(id, b.def.Kind, b.pos, b.def.Shape)
	}
}

func (s *Space) sync(b *body) {
	x, y := s.toSpace(b.pos)
	b.obj.X = x - b.hw
	b.obj.Y = y - b.hh
	b.obj.Update()
}

func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, id := range s.order {
		b := s.bodies[id]
		if b == nil || b.def.Kind != Dynamic {
			continue
		}

		b.vel.X += s.gravity.X * b.def.GravityScale * dt
		b.vel.Y += s.gravity.Y * b.def.GravityScale * dt

		travel := math.Max(math.Abs(b.vel.X), math.Abs(b.vel.Y)) * dt
		steps := int(math.Ceil(travel / s.maxSubstep))
		if steps < 1 {
			steps = 1
		} else if steps > maxSubsteps {
			steps = maxSubsteps
		}
		h := dt / float64(steps)
		for i := 0; i < steps; i++ {
			b.pos.X += b.vel.X * h
			b.pos.Y += b.vel.Y * h
			s.sync(b)
			s.resolve(b)
		}
	}
}

// resolve pushes a dynamic body out of everything solid it overlaps and
// removes the approaching part of its velocity.
func (s *Space) resolve(b *body) {
	for iter := 0; iter < resolveIterations; iter++ {
		touched := false
		for _, other := range s.nearby(b.obj.X, b.obj.Y, b.hw*2, b.hh*2, b.id) {
			mtv, ok := s.penetration(b.poly, b.pos, b.hw, b.hh, other)
			if !ok {
				continue
			}
			touched = true
			s.separate(b, other, mtv)
		}
		if !touched {
			return
		}
	}
}

func (s *Space) separate(b, other *body, mtv Vec2) {
	depth := math.Hypot(mtv.X, mtv.Y)
	if depth == 0 {
		return
	}
	n := Vec2{X: mtv.X / depth, Y: mtv.Y / depth}

	friction := Combine(b.def.Material.Friction, other.def.Material.Friction,
		b.def.Material.FrictionCombine, other.def.Material.FrictionCombine)
	restitution := Combine(b.def.Material.Restitution, other.def.Material.Restitution,
		b.def.Material.RestitutionCombine, other.def.Material.RestitutionCombine)

	if other.def.Kind == Dynamic && other.mass > 0 && b.mass > 0 {
		share := other.mass / (b.mass + other.mass)
		b.pos.X += mtv.X * share
		b.pos.Y += mtv.Y * share
		other.pos.X -= mtv.X * (1 - share)
		other.pos.Y -= mtv.Y * (1 - share)
		s.sync(b)
		s.sync(other)

		rel := Vec2{X: b.vel.X - other.vel.X, Y: b.vel.Y - other.vel.Y}
		vn := rel.X*n.X + rel.Y*n.Y
		if vn >= 0 {
			return
		}
		j := -(1 + restitution) * vn / (1/b.mass + 1/other.mass)
		b.vel.X += j / b.mass * n.X
		b.vel.Y += j / b.mass * n.Y
		other.vel.X -= j / other.mass * n.X
		other.vel.Y -= j / other.mass * n.Y
		return
	}

	b.pos.X += mtv.X
	b.pos.Y += mtv.Y
	s.sync(b)

	vn := b.vel.X*n.X + b.vel.Y*n.Y
	if vn >= 0 {
		return
	}
	jn := -(1 + restitution) * vn
	b.vel.X += jn * n.X
	b.vel.Y += jn * n.Y

	// Coulomb friction on the tangential component
	t := Vec2{X: -n.Y, Y: n.X}
	vt := b.vel.X*t.X + b.vel.Y*t.Y
	reduce := math.Min(math.Abs(vt), friction*jn)
	if vt > 0 {
		reduce = -reduce
	}
	b.vel.X += reduce * t.X
	b.vel.Y += reduce * t.Y
}

// nearby returns the solid bodies sharing cells with the given space-coordinate
// box, grown by one unit on each side so touching neighbours are included.
func (s *Space) nearby(x, y, w, h float64, exclude BodyID) []*body {
	probe := resolv.NewObject(x-1, y-1, w+2, h+2)
	s.space.Add(probe)
	check := probe.Check(0, 0, tagSolid)
	s.space.Remove(probe)
	if check == nil {
		return nil
	}

	seen := make(map[BodyID]bool)
	var out []*body
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*body)
		if !ok || other.id == exclude || seen[other.id] {
			continue
		}
		seen[other.id] = true
		out = append(out, other)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// penetration places poly (bounding half extents hw, hh) at center and tests it
// against other. The returned vector moves poly out of other, in world space.
func (s *Space) penetration(poly *resolv.ConvexPolygon, center Vec2, hw, hh float64, other *body) (Vec2, bool) {
	otherPoly, ok := other.obj.Shape.(*resolv.ConvexPolygon)
	if !ok {
		return Vec2{}, false
	}
	x, y := s.toSpace(center)
	poly.SetPosition(x-hw, y-hh)
	mtv, ok := separation(poly, otherPoly)
	if !ok {
		return Vec2{}, false
	}
	return fromSpace(mtv), true
}

// separation runs a separating axis test and returns the smallest translation
// that moves a out of b, in space coordinates. vector.Dot clamps to [-1, 1],
// so projections are computed here instead of through Project.
func separation(a, b *resolv.ConvexPolygon) (vector.Vector, bool) {
	va, vb := a.Transformed(), b.Transformed()
	depth := math.MaxFloat64
	var axis vector.Vector
	for _, ax := range append(a.SATAxes(), b.SATAxes()...) {
		if ax.Magnitude() < 1e-9 {
			continue
		}
		aMin, aMax := project(va, ax)
		bMin, bMax := project(vb, ax)
		overlap := math.Min(aMax, bMax) - math.Max(aMin, bMin)
		if overlap <= 0 {
			return nil, false
		}
		// containment: push out through the nearer side
		if (aMin >= bMin && aMax <= bMax) || (bMin >= aMin && bMax <= aMax) {
			overlap += math.Min(math.Abs(aMin-bMin), math.Abs(aMax-bMax))
		}
		if overlap < depth {
			depth, axis = overlap, ax
		}
	}
	if axis == nil {
		return nil, false
	}

	ca, cb := centroid(va), centroid(vb)
	if (ca[0]-cb[0])*axis[0]+(ca[1]-cb[1])*axis[1] < 0 {
		axis = axis.Invert()
	}
	return axis.Scale(depth), true
}

func project(points []vector.Vector, axis vector.Vector) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		d := p[0]*axis[0] + p[1]*axis[1]
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

func centroid(points []vector.Vector) vector.Vector {
	c := vector.Vector{0, 0}
	for _, p := range points {
		c[0] += p[0]
		c[1] += p[1]
	}
	n := float64(len(points))
	c[0] /= n
	c[1] /= n
	return c
}

func (s *Space) CastShape(shape Shape, origin, direction Vec2, maxDistance float64, exclude BodyID) []ShapeHit {
	length := math.Hypot(direction.X, direction.Y)
	if length == 0 || maxDistance < 0 {
		return nil
	}
	dir := Vec2{X: direction.X / length, Y: direction.Y / length}

	hw, hh := shape.Extents()
	poly := shape.resolvPolygon()
	at := func(d float64) Vec2 {
		return Vec2{X: origin.X + dir.X*d, Y: origin.Y + dir.Y*d}
	}

	// Broad phase over the box swept by the cast.
	end := at(maxDistance)
	minX, maxX := math.Min(origin.X, end.X)-hw, math.Max(origin.X, end.X)+hw
	minY, maxY := math.Min(origin.Y, end.Y)-hh, math.Max(origin.Y, end.Y)+hh
	sx, sy := s.toSpace(Vec2{X: minX, Y: maxY})
	candidates := s.nearby(sx, sy, maxX-minX, maxY-minY, exclude)

	var hits []ShapeHit
	for _, other := range candidates {
		hit, ok := s.castAgainst(poly, hw, hh, at, maxDistance, other)
		if ok {
			hits = append(hits, hit)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (s *Space) castAgainst(poly *resolv.ConvexPolygon, hw, hh float64, at func(float64) Vec2, maxDistance float64, other *body) (ShapeHit, bool) {
	miss := -1.0
	hitAt := -1.0
	for d := 0.0; ; d += castStep {
		if d > maxDistance {
			d = maxDistance
		}
		if _, ok := s.penetration(poly, at(d), hw, hh, other); ok {
			hitAt = d
			break
		}
		miss = d
		if d >= maxDistance {
			break
		}
	}
	if hitAt < 0 {
		return ShapeHit{}, false
	}

	if miss >= 0 {
		lo, hi := miss, hitAt
		for hi-lo > castPrecision {
			mid := (lo + hi) / 2
			if _, ok := s.penetration(poly, at(mid), hw, hh, other); ok {
				hi = mid
			} else {
				lo = mid
			}
		}
		hitAt = hi
	}

	mtv, _ := s.penetration(poly, at(hitAt), hw, hh, other)
	depth := math.Hypot(mtv.X, mtv.Y)
	normal := Vec2{}
	if depth > 0 {
		normal = Vec2{X: -mtv.X / depth, Y: -mtv.Y / depth}
	}
	return ShapeHit{
		Body:     other.id,
		Normal:   normal,
		Distance: hitAt,
		Data:     other.def.Data,
	}, true
}
