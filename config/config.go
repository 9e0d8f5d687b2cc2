package config

import (
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity is created on.
const Default ecs.LayerID = 0

// CharacterConfig is the default tuning profile applied to every spawned character.
type CharacterConfig struct {
	// Movement
	Acceleration float64 `yaml:"acceleration" env:"GUNLINE_ACCELERATION" json:"acceleration"`
	Damping      float64 `yaml:"damping" env:"GUNLINE_DAMPING" json:"damping"`
	JumpImpulse  float64 `yaml:"jump_impulse" env:"GUNLINE_JUMP_IMPULSE" json:"jumpImpulse"`

	// MaxSlopeDegrees <= 0 leaves the character without a slope limit:
	// any ground hit counts as grounded.
	MaxSlopeDegrees float64 `yaml:"max_slope_degrees" env:"GUNLINE_MAX_SLOPE_DEGREES" json:"maxSlopeDegrees"`

	// Body
	GravityScale  float64 `yaml:"gravity_scale" env:"GUNLINE_GRAVITY_SCALE" json:"gravityScale"`
	Density       float64 `yaml:"density" json:"density"`
	Friction      float64 `yaml:"friction" json:"friction"`
	Restitution   float64 `yaml:"restitution" json:"restitution"`
	CapsuleRadius float64 `yaml:"capsule_radius" json:"-"`
	CapsuleLength float64 `yaml:"capsule_length" json:"-"`

	// Ground probe
	CasterScale   float64 `yaml:"caster_scale" json:"-"`
	ProbeDistance float64 `yaml:"probe_distance" json:"-"`

	// Used when the level has no spawn points
	SpawnX float64 `yaml:"spawn_x" json:"-"`
	SpawnY float64 `yaml:"spawn_y" json:"-"`
}

// MaxSlopeAngle returns the slope limit in radians, or nil when none is configured.
func (c CharacterConfig) MaxSlopeAngle() *float64 {
	if c.MaxSlopeDegrees <= 0 {
		return nil
	}
	rad := c.MaxSlopeDegrees * math.Pi / 180
	return &rad
}

type WeaponConfig struct {
	MuzzleSpeed float64 `yaml:"muzzle_speed" env:"GUNLINE_MUZZLE_SPEED" json:"muzzleSpeed"`

	// Local offset of the weapon from its character's origin
	OffsetX float64 `yaml:"offset_x" json:"-"`
	OffsetY float64 `yaml:"offset_y" json:"-"`

	// Sprite size, anchored at its top centre
	Width  float64 `yaml:"width" json:"-"`
	Length float64 `yaml:"length" json:"-"`

	RecoilDistance float64 `yaml:"recoil_distance" json:"-"`
	RecoilDuration float64 `yaml:"recoil_duration" json:"-"` // seconds
}

type ProjectileConfig struct {
	Lifetime float64 `yaml:"lifetime" env:"GUNLINE_PROJECTILE_LIFETIME" json:"lifetime"` // seconds
	Radius   float64 `yaml:"radius" json:"-"`
}

type PhysicsConfig struct {
	GravityY float64 `yaml:"gravity_y" env:"GUNLINE_GRAVITY_Y" json:"gravityY"`

	// World bounds, centred on the origin
	Width  int `yaml:"width" json:"-"`
	Height int `yaml:"height" json:"-"`

	CellSize int `yaml:"cell_size" json:"-"`

	// Largest distance a body may travel in one collision sub-step
	MaxSubstep float64 `yaml:"max_substep" json:"-"`
}

type PlatformConfig struct {
	Travel   float64 `yaml:"travel"`
	Duration float64 `yaml:"duration"` // seconds per leg
}

type ScreenConfig struct {
	Width  int `yaml:"width" env:"GUNLINE_SCREEN_WIDTH"`
	Height int `yaml:"height" env:"GUNLINE_SCREEN_HEIGHT"`
	TPS    int `yaml:"tps" env:"GUNLINE_TPS"`
}

type CameraConfig struct {
	// Fraction of the distance to the target covered each frame
	FollowSmoothing float64 `yaml:"follow_smoothing"`
}

type DebugConfig struct {
	DrawProbes bool `yaml:"draw_probes" env:"GUNLINE_DEBUG_PROBES"`
}

var (
	Character  CharacterConfig
	Weapon     WeaponConfig
	Projectile ProjectileConfig
	Physics    PhysicsConfig
	Platform   PlatformConfig
	Screen     ScreenConfig
	Camera     CameraConfig
	Debug      DebugConfig
)

func init() {
	Reset()
}

// Reset restores every config value to its built-in default.
func Reset() {
	Character = CharacterConfig{
		Acceleration:    1250.0,
		Damping:         0.92,
		JumpImpulse:     1200.0,
		MaxSlopeDegrees: 30.0,

		GravityScale:  1.5,
		Density:       2.0,
		Friction:      0.0,
		Restitution:   0.0,
		CapsuleRadius: 12.5,
		CapsuleLength: 20.0,

		CasterScale:   0.99,
		ProbeDistance: 10.0,

		SpawnX: 50.0,
		SpawnY: -100.0,
	}

	Weapon = WeaponConfig{
		MuzzleSpeed:    500.0,
		OffsetX:        0,
		OffsetY:        0,
		Width:          10.0,
		Length:         40.0,
		RecoilDistance: 6.0,
		RecoilDuration: 0.15,
	}

	Projectile = ProjectileConfig{
		Lifetime: 2.0,
		Radius:   5.0,
	}

	Physics = PhysicsConfig{
		GravityY:   -1000.0,
		Width:      4096,
		Height:     2048,
		CellSize:   32,
		MaxSubstep: 4.0,
	}

	Platform = PlatformConfig{
		Travel:   128,
		Duration: 2,
	}

	Screen = ScreenConfig{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Debug = DebugConfig{
		DrawProbes: false,
	}

	Input = defaultInput()
}
