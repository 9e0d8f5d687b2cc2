package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// File mirrors the global config sections so a YAML file can override any of them.
type File struct {
	Character  *CharacterConfig  `yaml:"character"`
	Weapon     *WeaponConfig     `yaml:"weapon"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Platform   *PlatformConfig   `yaml:"platform"`
	Input      *InputConfig      `yaml:"input"`
	Screen     *ScreenConfig     `yaml:"screen"`
	Camera     *CameraConfig     `yaml:"camera"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// current returns a File pointing at the live globals, so decoding into it
// only touches the keys present in the document.
func current() *File {
	return &File{
		Character:  &Character,
		Weapon:     &Weapon,
		Projectile: &Projectile,
		Physics:    &Physics,
		Platform:   &Platform,
		Input:      &Input,
		Screen:     &Screen,
		Camera:     &Camera,
		Debug:      &Debug,
	}
}

// LoadFile overlays the YAML document at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Decode(data)
}

// Decode overlays a YAML document onto the current configuration.
func Decode(data []byte) error {
	if err := yaml.Unmarshal(data, current()); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return Validate()
}

// ApplyEnv overlays GUNLINE_* environment variables onto the current configuration.
func ApplyEnv() error {
	f := current()
	targets := []any{f.Character, f.Weapon, f.Projectile, f.Physics, f.Input, f.Screen, f.Debug}
	for _, target := range targets {
		if err := env.Parse(target); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	return Validate()
}

// Validate rejects tuning values the simulation cannot run with.
func Validate() error {
	if Character.Damping <= 0 || Character.Damping > 1 {
		return fmt.Errorf("character damping %v outside (0,1]", Character.Damping)
	}
	if Character.CasterScale <= 0 {
		return fmt.Errorf("caster scale %v must be positive", Character.CasterScale)
	}
	if Projectile.Lifetime < 0 {
		return fmt.Errorf("projectile lifetime %v must not be negative", Projectile.Lifetime)
	}
	if Physics.Width <= 0 || Physics.Height <= 0 || Physics.CellSize <= 0 {
		return fmt.Errorf("physics bounds %dx%d cell %d must be positive", Physics.Width, Physics.Height, Physics.CellSize)
	}
	if Physics.MaxSubstep <= 0 {
		return fmt.Errorf("physics max substep %v must be positive", Physics.MaxSubstep)
	}
	return nil
}
