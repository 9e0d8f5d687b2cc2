package systems

import (
	"github.com/automoto/gunline/components"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GroundedDetector recomputes every character's Grounded tag from this
// frame's downward shape cast. The previous state is never consulted.
type GroundedDetector struct {
	World physics.World
}

func (g *GroundedDetector) Update(e *ecs.ECS) {
	var grounded, airborne []*donburi.Entry

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		if g.probe(entry) {
			grounded = append(grounded, entry)
		} else {
			airborne = append(airborne, entry)
		}
	})

	// Tag changes move entries between archetypes, so apply them after iterating
	for _, entry := range grounded {
		if !entry.HasComponent(components.Grounded) {
			entry.AddComponent(components.Grounded)
		}
	}
	for _, entry := range airborne {
		if entry.HasComponent(components.Grounded) {
			entry.RemoveComponent(components.Grounded)
		}
	}
}

func (g *GroundedDetector) probe(entry *donburi.Entry) bool {
	character := components.Character.Get(entry)
	body := components.Body.Get(entry)
	caster := components.ShapeCaster.Get(entry)

	origin := g.World.Position(body.ID)
	caster.Hits = g.World.CastShape(caster.Shape, origin, caster.Direction, caster.MaxDistance, body.ID)

	for _, hit := range caster.Hits {
		// The hit normal points out of the caster; flip it to get the ground's.
		if gamemath.Walkable(-hit.Normal.X, -hit.Normal.Y, character.MaxSlopeAngle) {
			return true
		}
	}
	return false
}

// IsGrounded reports whether the character stood on walkable ground this frame.
func IsGrounded(entry *donburi.Entry) bool {
	return entry.HasComponent(components.Grounded)
}
