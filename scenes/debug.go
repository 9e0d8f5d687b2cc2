package scenes

import (
	"image/color"

	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/automoto/gunline/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorStatic     = color.RGBA{100, 100, 100, 255}
	colorDynamic    = color.RGBA{0, 255, 255, 255}
	colorKinematic  = color.RGBA{255, 200, 0, 255}
	colorCharacter  = color.RGBA{0, 0, 255, 255}
	colorGrounded   = color.RGBA{0, 255, 0, 255}
	colorWeapon     = color.RGBA{255, 255, 255, 255}
	colorProjectile = color.RGBA{255, 0, 0, 255}
	colorProbeHit   = color.RGBA{255, 0, 255, 255}
)

// DebugRenderer outlines every body in the space and draws weapons and
// projectiles on top.
type DebugRenderer struct {
	Space  *physics.Space
	Camera *Camera
}

func (d *DebugRenderer) Draw(e *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - d.Camera.Position.X
	camY := float64(height)/2 + d.Camera.Position.Y
	toScreen := func(p physics.Vec2) (float32, float32) {
		return float32(p.X + camX), float32(camY - p.Y)
	}

	characters := make(map[physics.BodyID]*donburi.Entry)
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		characters[components.Body.Get(entry).ID] = entry
	})

	d.Space.Bodies(func(id physics.BodyID, kind physics.BodyKind, pos physics.Vec2, shape physics.Shape) {
		if kind == physics.Sensor {
			return
		}
		c := colorDynamic
		switch kind {
		case physics.Static:
			c = colorStatic
		case physics.Kinematic:
			c = colorKinematic
		}
		if entry, ok := characters[id]; ok {
			c = colorCharacter
			if systems.IsGrounded(entry) {
				c = colorGrounded
			}
		}
		drawOutline(screen, shape, pos, toScreen, c)
	})

	components.Weapon.Each(e.World, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		if !e.World.Valid(weapon.Owner) {
			return
		}
		owner := e.World.Entry(weapon.Owner)
		if !owner.HasComponent(components.Body) {
			return
		}
		base := d.Space.Position(components.Body.Get(owner).ID)
		base.X += weapon.OffsetX
		base.Y += weapon.OffsetY

		// The sprite hangs along its local -Y; recoil pulls it back toward the owner
		dx, dy := gamemath.LaunchDirection(weapon.Orientation)
		start := physics.Vec2{X: base.X - dx*weapon.Kick, Y: base.Y - dy*weapon.Kick}
		end := physics.Vec2{X: start.X + dx*cfg.Weapon.Length, Y: start.Y + dy*cfg.Weapon.Length}
		x0, y0 := toScreen(start)
		x1, y1 := toScreen(end)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(cfg.Weapon.Width/2), colorWeapon, false)
	})

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		x, y := toScreen(components.Projectile.Get(entry).Position)
		vector.FillCircle(screen, x, y, float32(cfg.Projectile.Radius), colorProjectile, false)
	})

	if !cfg.Debug.DrawProbes {
		return
	}
	components.ShapeCaster.Each(e.World, func(entry *donburi.Entry) {
		caster := components.ShapeCaster.Get(entry)
		origin := d.Space.Position(components.Body.Get(entry).ID)
		for _, hit := range caster.Hits {
			at := physics.Vec2{
				X: origin.X + caster.Direction.X*hit.Distance,
				Y: origin.Y + caster.Direction.Y*hit.Distance,
			}
			drawOutline(screen, caster.Shape, at, toScreen, colorProbeHit)
		}
	})
}

func drawOutline(screen *ebiten.Image, shape physics.Shape, pos physics.Vec2, toScreen func(physics.Vec2) (float32, float32), c color.Color) {
	n := len(shape.Points)
	for i := 0; i < n; i++ {
		a, b := shape.Points[i], shape.Points[(i+1)%n]
		x0, y0 := toScreen(physics.Vec2{X: pos.X + a.X, Y: pos.Y + a.Y})
		x1, y1 := toScreen(physics.Vec2{X: pos.X + b.X, Y: pos.Y + b.Y})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}
