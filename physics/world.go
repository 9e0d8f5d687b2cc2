// Package physics is the rigid-body world the movement core talks to. The
// core only reads shape-cast results and writes velocities; stepping, contact
// resolution and body storage belong here.
package physics

//go:generate go tool mockgen -source=world.go -destination=mocks/world_mock.go -package=mocks

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is a world-space vector. +Y points up.
type Vec2 = dmath.Vec2

// BodyID identifies a body inside a World. The zero value is never issued.
type BodyID uint32

type BodyKind int

const (
	// Dynamic bodies are integrated (gravity, velocity) and pushed out of contacts.
	Dynamic BodyKind = iota
	// Static bodies never move.
	Static
	// Kinematic bodies move only when positioned explicitly and are not
	// resolved against other bodies. Other bodies still collide with them.
	Kinematic
	// Sensor bodies are positioned explicitly and never collide.
	Sensor
)

// CombineRule selects how two materials' coefficients are merged at a contact.
type CombineRule int

const (
	CombineAverage CombineRule = iota
	CombineMin
	CombineMax
	CombineMultiply
)

// Combine merges two coefficients. When the two sides disagree on the rule
// the stricter one wins, in the order Max > Multiply > Min > Average.
func Combine(a, b float64, ra, rb CombineRule) float64 {
	rule := ra
	if rb > rule {
		rule = rb
	}
	switch rule {
	case CombineMin:
		return min(a, b)
	case CombineMax:
		return max(a, b)
	case CombineMultiply:
		return a * b
	default:
		return (a + b) / 2
	}
}

type Material struct {
	Density            float64
	Friction           float64
	FrictionCombine    CombineRule
	Restitution        float64
	RestitutionCombine CombineRule
}

// BodyDef describes a body to spawn.
type BodyDef struct {
	Kind         BodyKind
	Shape        Shape
	Position     Vec2
	Material     Material
	GravityScale float64
	Tags         []string

	// Data is carried back on ShapeHit so callers can map bodies to entities.
	Data any
}

// ShapeHit is one result of a shape cast. Normal is the contact normal on the
// cast shape, in the shape's local frame, pointing away from the shape.
type ShapeHit struct {
	Body     BodyID
	Normal   Vec2
	Distance float64
	Data     any
}

// World is the physics service the movement core depends on.
type World interface {
	// CastShape sweeps shape from origin along direction (normalized by the
	// world) up to maxDistance and returns every solid body it touches,
	// nearest first. The exclude body is skipped.
	CastShape(shape Shape, origin, direction Vec2, maxDistance float64, exclude BodyID) []ShapeHit
	SetLinearVelocity(body BodyID, v Vec2)
	LinearVelocity(body BodyID) Vec2
	Position(body BodyID) Vec2
	SetPosition(body BodyID, p Vec2)
	SpawnBody(def BodyDef) BodyID
	DespawnBody(body BodyID)
	// Step integrates gravity and velocity for dt seconds and resolves contacts.
	Step(dt float64)
}
