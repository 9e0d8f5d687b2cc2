package control

import (
	"sync"
	"testing"

	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/tags"
	"github.com/yohamta/donburi"
)

func TestBindOnce(t *testing.T) {
	w := donburi.NewWorld()
	a := NewAssignments()

	creates := 0
	create := func() (donburi.Entity, bool) {
		creates++
		return w.Create(tags.Character), true
	}

	e1, created := a.BindOnce(device.Gamepad(0), create)
	if !created {
		t.Fatal("first bind did not create")
	}
	e2, created := a.BindOnce(device.Gamepad(1), create)
	if !created || e2 == e1 {
		t.Fatalf("second source bind = %v created=%v, want a new entity", e2, created)
	}
	again, created := a.BindOnce(device.Gamepad(0), create)
	if created || again != e1 {
		t.Errorf("rebind = %v created=%v, want existing %v", again, created, e1)
	}
	if creates != 2 {
		t.Errorf("create called %d times, want 2", creates)
	}

	if got, ok := a.Lookup(device.Gamepad(1)); !ok || got != e2 {
		t.Errorf("Lookup(gamepad:1) = %v, %v", got, ok)
	}
	if _, ok := a.Lookup(device.Keyboard); ok {
		t.Error("Lookup(keyboard) found a binding")
	}
	if src, ok := a.SourceOf(e1); !ok || src != device.Gamepad(0) {
		t.Errorf("SourceOf(e1) = %v, %v", src, ok)
	}
	first, ok := a.First()
	if !ok || first.Character != e1 {
		t.Errorf("First() = %+v, %v", first, ok)
	}
	if a.Len() != 2 || len(a.Bindings()) != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestBindOnceFailedCreate(t *testing.T) {
	a := NewAssignments()
	e, created := a.BindOnce(device.Keyboard, func() (donburi.Entity, bool) { return donburi.Null, false })
	if created || e != donburi.Null {
		t.Errorf("BindOnce() = %v, %v, want Null, false", e, created)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestBindOnceRefusesSecondSourceForCharacter(t *testing.T) {
	w := donburi.NewWorld()
	a := NewAssignments()
	e := w.Create(tags.Character)
	same := func() (donburi.Entity, bool) { return e, true }

	a.BindOnce(device.Gamepad(0), same)
	if _, created := a.BindOnce(device.Gamepad(1), same); created {
		t.Error("a character was bound to two sources")
	}
}

func TestBindOnceConcurrent(t *testing.T) {
	w := donburi.NewWorld()
	var wmu sync.Mutex
	a := NewAssignments()

	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created := a.BindOnce(device.Keyboard, func() (donburi.Entity, bool) {
				wmu.Lock()
				defer wmu.Unlock()
				return w.Create(tags.Character), true
			})
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if createdCount != 1 || a.Len() != 1 {
		t.Errorf("created %d bindings, table has %d, want 1", createdCount, a.Len())
	}
}
