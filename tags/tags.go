package tags

import "github.com/yohamta/donburi"

var (
	Character        = donburi.NewTag().SetName("Character")
	Weapon           = donburi.NewTag().SetName("Weapon")
	Projectile       = donburi.NewTag().SetName("Projectile")
	Wall             = donburi.NewTag().SetName("Wall")
	Crate            = donburi.NewTag().SetName("Crate")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags carried on physics bodies
const (
	ResolvCharacter  = "Character"
	ResolvProjectile = "Projectile"
	ResolvWall       = "wall"
	ResolvRamp       = "ramp"
	ResolvCrate      = "crate"
	ResolvPlatform   = "platform"
)
