package persistence

import (
	"errors"
	"testing"

	cfg "github.com/automoto/gunline/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func TestSaveAndApply(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	s := New(newMemStore(), nil)
	cfg.Character.Acceleration = 900
	cfg.Weapon.MuzzleSpeed = 650
	cfg.Character.CapsuleRadius = 20
	if err := s.SaveCurrent(); err != nil {
		t.Fatalf("SaveCurrent() error = %v", err)
	}

	cfg.Reset()
	if !s.ApplySaved() {
		t.Fatal("ApplySaved() = false, want true")
	}
	if cfg.Character.Acceleration != 900 {
		t.Errorf("Acceleration = %v, want 900", cfg.Character.Acceleration)
	}
	if cfg.Weapon.MuzzleSpeed != 650 {
		t.Errorf("MuzzleSpeed = %v, want 650", cfg.Weapon.MuzzleSpeed)
	}
	// Shape sizes are not part of the saved tuning
	if cfg.Character.CapsuleRadius != 12.5 {
		t.Errorf("CapsuleRadius = %v, want default 12.5", cfg.Character.CapsuleRadius)
	}
}

func TestPartialDocumentKeepsCurrentValues(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	store := newMemStore()
	store.items[tuningKey] = []byte(`{"projectile":{"lifetime":4.5}}`)

	tuning, err := New(store, nil).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tuning.Projectile.Lifetime != 4.5 {
		t.Errorf("Lifetime = %v, want 4.5", tuning.Projectile.Lifetime)
	}
	if tuning.Character.JumpImpulse != 1200 {
		t.Errorf("JumpImpulse = %v, want current 1200", tuning.Character.JumpImpulse)
	}
}

func TestApplySavedFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{"nothing saved", newMemStore()},
		{"store error", &memStore{loadErr: errors.New("disk on fire")}},
		{"corrupt data", &memStore{items: map[string][]byte{tuningKey: []byte("{")}}},
		{"invalid damping", &memStore{items: map[string][]byte{tuningKey: []byte(`{"character":{"damping":3}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Reset()
			t.Cleanup(cfg.Reset)

			if New(tt.store, nil).ApplySaved() {
				t.Error("ApplySaved() = true, want false")
			}
			if cfg.Character.Damping != 0.92 {
				t.Errorf("Damping = %v, want untouched 0.92", cfg.Character.Damping)
			}
		})
	}
}

func TestClear(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	s := New(newMemStore(), nil)
	if err := s.SaveCurrent(); err != nil {
		t.Fatalf("SaveCurrent() error = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if tuning, err := s.Load(); err != nil || tuning != nil {
		t.Errorf("Load() after Clear = %v, %v, want nil, nil", tuning, err)
	}
}
