package systems

import (
	"math"
	"testing"

	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/physics/mocks"
	"go.uber.org/mock/gomock"
)

func hitWithGroundNormal(angle float64) physics.ShapeHit {
	// ShapeHit normals point out of the caster, opposite the ground normal
	return physics.ShapeHit{
		Body:     99,
		Normal:   physics.Vec2{X: -math.Sin(angle), Y: -math.Cos(angle)},
		Distance: 1,
	}
}

func TestGroundedDetector(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }
	limit := deg(30)

	tests := []struct {
		name     string
		maxSlope *float64
		hits     []physics.ShapeHit
		want     bool
	}{
		{"no hits", &limit, nil, false},
		{"flat ground", &limit, []physics.ShapeHit{hitWithGroundNormal(0)}, true},
		{"slope within limit", &limit, []physics.ShapeHit{hitWithGroundNormal(deg(25))}, true},
		{"slope past limit", &limit, []physics.ShapeHit{hitWithGroundNormal(deg(45))}, false},
		{"no limit accepts a wall", nil, []physics.ShapeHit{hitWithGroundNormal(deg(90))}, true},
		{"any walkable hit is enough", &limit, []physics.ShapeHit{
			hitWithGroundNormal(deg(60)),
			hitWithGroundNormal(deg(5)),
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t, 1.0/60)
			c := sim.character(10, 20)
			components.Character.Get(c).MaxSlopeAngle = tt.maxSlope
			body := components.Body.Get(c).ID

			ctrl := gomock.NewController(t)
			world := mocks.NewMockWorld(ctrl)
			world.EXPECT().Position(body).Return(physics.Vec2{X: 10, Y: 20})
			world.EXPECT().
				CastShape(gomock.Any(), physics.Vec2{X: 10, Y: 20}, physics.Vec2{Y: -1}, 10.0, body).
				Return(tt.hits)

			(&GroundedDetector{World: world}).Update(sim.ecs)

			if got := IsGrounded(c); got != tt.want {
				t.Errorf("IsGrounded() = %v, want %v", got, tt.want)
			}
			if got := len(components.ShapeCaster.Get(c).Hits); got != len(tt.hits) {
				t.Errorf("stored %d hits, want %d", got, len(tt.hits))
			}
		})
	}
}

func TestGroundedIsRecomputedEachFrame(t *testing.T) {
	sim := newTestSim(t, 1.0/60)
	c := sim.character(0, 0)

	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)
	world.EXPECT().Position(gomock.Any()).Return(physics.Vec2{}).AnyTimes()
	gomock.InOrder(
		world.EXPECT().CastShape(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]physics.ShapeHit{hitWithGroundNormal(0)}),
		world.EXPECT().CastShape(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
		world.EXPECT().CastShape(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]physics.ShapeHit{hitWithGroundNormal(0)}),
	)

	detector := &GroundedDetector{World: world}
	for i, want := range []bool{true, false, true} {
		detector.Update(sim.ecs)
		if got := IsGrounded(c); got != want {
			t.Errorf("frame %d: IsGrounded() = %v, want %v", i, got, want)
		}
	}
}

func TestGroundedAgainstSpace(t *testing.T) {
	sim := newTestSim(t, 1.0/60)
	sim.space.SpawnBody(physics.BodyDef{
		Kind:     physics.Static,
		Shape:    physics.Rectangle(400, 20),
		Position: physics.Vec2{},
	})
	standing := sim.character(0, 10+22.5)
	flying := sim.character(100, 300)

	(&GroundedDetector{World: sim.space}).Update(sim.ecs)

	if !IsGrounded(standing) {
		t.Error("character resting on the ground is not grounded")
	}
	if IsGrounded(flying) {
		t.Error("character high above the ground is grounded")
	}
}
