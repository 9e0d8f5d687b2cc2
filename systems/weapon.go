package systems

import (
	"log/slog"

	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/physics"
	"github.com/automoto/gunline/shared/gamemath"
	"github.com/automoto/gunline/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type shot struct {
	owner    donburi.Entity
	pos, vel physics.Vec2
}

// WeaponStage copies each owner's aim onto its weapon and turns a pending
// fire intent into a projectile.
type WeaponStage struct {
	World  physics.World
	Frame  *Frame
	Logger *slog.Logger
}

func (w *WeaponStage) Update(e *ecs.ECS) {
	var shots []shot

	components.Weapon.Each(e.World, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		updateRecoil(weapon, w.Frame.DT)

		if !e.World.Valid(weapon.Owner) {
			return
		}
		owner := e.World.Entry(weapon.Owner)
		if !owner.HasComponent(components.Character) {
			return
		}
		character := components.Character.Get(owner)
		weapon.Orientation = character.Aim

		if character.FireIntent {
			body := components.Body.Get(owner)
			vx, vy := gamemath.LaunchVelocity(character.Aim, cfg.Weapon.MuzzleSpeed)
			shots = append(shots, shot{
				owner: weapon.Owner,
				pos:   w.World.Position(body.ID),
				vel:   physics.Vec2{X: vx, Y: vy},
			})
			weapon.Recoil = factory.NewRecoil()
			weapon.Kick = cfg.Weapon.RecoilDistance
		}
		character.FireIntent = false
	})

	for _, s := range shots {
		p := factory.CreateProjectile(e, w.World, s.owner, s.pos, s.vel)
		w.logger().Debug("projectile fired", "owner", s.owner, "projectile", p.Entity(), "vx", s.vel.X, "vy", s.vel.Y)
	}
}

func updateRecoil(weapon *components.WeaponData, dt float64) {
	if weapon.Recoil == nil {
		return
	}
	kick, done := weapon.Recoil.Update(float32(dt))
	weapon.Kick = float64(kick)
	if done {
		weapon.Recoil = nil
		weapon.Kick = 0
	}
}

func (w *WeaponStage) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}
