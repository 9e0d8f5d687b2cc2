package factory

import (
	"github.com/automoto/gunline/archetypes"
	"github.com/automoto/gunline/components"
	cfg "github.com/automoto/gunline/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWeapon attaches a weapon to owner at the configured local offset.
func CreateWeapon(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(ecs)
	components.Weapon.SetValue(weapon, components.WeaponData{
		Owner:   owner.Entity(),
		OffsetX: cfg.Weapon.OffsetX,
		OffsetY: cfg.Weapon.OffsetY,
	})
	return weapon
}

// NewRecoil returns the tween that eases a weapon's kick back to rest.
func NewRecoil() *gween.Tween {
	return gween.New(float32(cfg.Weapon.RecoilDistance), 0, float32(cfg.Weapon.RecoilDuration), ease.OutQuad)
}
