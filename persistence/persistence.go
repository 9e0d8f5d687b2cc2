// Package persistence stores tuning overrides between runs through gdata.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	cfg "github.com/automoto/gunline/config"
	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

// Store is the part of *gdata.Manager used here.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Tuning is the saved subset of the configuration. Fields tagged json:"-" in
// the config sections are never stored.
type Tuning struct {
	Character  cfg.CharacterConfig  `json:"character"`
	Weapon     cfg.WeaponConfig     `json:"weapon"`
	Projectile cfg.ProjectileConfig `json:"projectile"`
	Physics    cfg.PhysicsConfig    `json:"physics"`
}

// Current snapshots the live configuration.
func Current() *Tuning {
	return &Tuning{
		Character:  cfg.Character,
		Weapon:     cfg.Weapon,
		Projectile: cfg.Projectile,
		Physics:    cfg.Physics,
	}
}

// Apply writes t into the live configuration.
func (t *Tuning) Apply() error {
	prev := Current()
	cfg.Character = t.Character
	cfg.Weapon = t.Weapon
	cfg.Projectile = t.Projectile
	cfg.Physics = t.Physics
	if err := cfg.Validate(); err != nil {
		prev.restore()
		return fmt.Errorf("apply saved tuning: %w", err)
	}
	return nil
}

func (t *Tuning) restore() {
	cfg.Character = t.Character
	cfg.Weapon = t.Weapon
	cfg.Projectile = t.Projectile
	cfg.Physics = t.Physics
}

type Settings struct {
	store  Store
	logger *slog.Logger
}

// Open opens the gdata store for appName.
func Open(appName string, logger *slog.Logger) (*Settings, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return New(m, logger), nil
}

func New(store Store, logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Settings{store: store, logger: logger}
}

// Load returns the saved tuning layered over the current configuration, or
// nil when nothing has been saved.
func (s *Settings) Load() (*Tuning, error) {
	data, err := s.store.LoadItem(tuningKey)
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	t := Current()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	return t, nil
}

func (s *Settings) Save(t *Tuning) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := s.store.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// SaveCurrent stores the live configuration.
func (s *Settings) SaveCurrent() error {
	return s.Save(Current())
}

// Clear removes any saved tuning.
func (s *Settings) Clear() error {
	if err := s.store.SaveItem(tuningKey, nil); err != nil {
		return fmt.Errorf("clear tuning: %w", err)
	}
	return nil
}

// ApplySaved loads and applies saved tuning. Problems are logged and the
// current configuration is kept. It reports whether anything was applied.
func (s *Settings) ApplySaved() bool {
	t, err := s.Load()
	if err != nil {
		s.logger.Warn("could not load saved tuning", "err", err)
		return false
	}
	if t == nil {
		return false
	}
	if err := t.Apply(); err != nil {
		s.logger.Warn("ignoring saved tuning", "err", err)
		return false
	}
	s.logger.Info("applied saved tuning")
	return true
}
