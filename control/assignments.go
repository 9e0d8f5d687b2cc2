// Package control holds the table binding control sources to the characters they drive.
package control

import (
	"sync"

	"github.com/automoto/gunline/device"
	"github.com/yohamta/donburi"
)

// Binding is one source → character entry.
type Binding struct {
	Source    device.SourceID
	Character donburi.Entity
}

// Assignments maps each control source to at most one character. Entries are
// only ever added; insertion order is kept.
type Assignments struct {
	mu     sync.RWMutex
	bySrc  map[device.SourceID]donburi.Entity
	byChar map[donburi.Entity]device.SourceID
	order  []Binding
}

func NewAssignments() *Assignments {
	return &Assignments{
		bySrc:  make(map[device.SourceID]donburi.Entity),
		byChar: make(map[donburi.Entity]device.SourceID),
	}
}

// BindOnce binds src to the character returned by create, calling create only
// when src is unbound. The check, create and insert happen under one lock.
// It reports the character now bound to src and whether it was created.
func (a *Assignments) BindOnce(src device.SourceID, create func() (donburi.Entity, bool)) (donburi.Entity, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if e, ok := a.bySrc[src]; ok {
		return e, false
	}
	e, ok := create()
	if !ok {
		return donburi.Null, false
	}
	if _, taken := a.byChar[e]; taken {
		return donburi.Null, false
	}
	a.bySrc[src] = e
	a.byChar[e] = src
	a.order = append(a.order, Binding{Source: src, Character: e})
	return e, true
}

func (a *Assignments) Lookup(src device.SourceID) (donburi.Entity, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.bySrc[src]
	return e, ok
}

// SourceOf returns the source driving character e.
func (a *Assignments) SourceOf(e donburi.Entity) (device.SourceID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	src, ok := a.byChar[e]
	return src, ok
}

// First returns the earliest binding.
func (a *Assignments) First() (Binding, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.order) == 0 {
		return Binding{}, false
	}
	return a.order[0], true
}

func (a *Assignments) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

// Bindings returns a copy of every binding in insertion order.
func (a *Assignments) Bindings() []Binding {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Binding, len(a.order))
	copy(out, a.order)
	return out
}
