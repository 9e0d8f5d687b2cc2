package systems

import (
	"math"

	"github.com/automoto/gunline/actions"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/control"
	"github.com/automoto/gunline/device"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// buttonState stores the current and previous frame's pressed state for
// every button. JustPressed is computed by comparing the two.
type buttonState struct {
	Current  [device.ButtonCount]bool
	Previous [device.ButtonCount]bool
}

// Inputs is the per-frame snapshot of every connected source, shared by the
// input translator and the spawner.
type Inputs struct {
	devices device.Devices
	sources []device.Source
	states  map[device.SourceID]*buttonState
}

func NewInputs(devices device.Devices) *Inputs {
	return &Inputs{
		devices: devices,
		states:  make(map[device.SourceID]*buttonState),
	}
}

// Poll samples every device once. Call it once per frame before reading.
func (in *Inputs) Poll() {
	in.sources = in.devices.Poll()
	for _, src := range in.sources {
		st, ok := in.states[src.ID()]
		if !ok {
			st = &buttonState{}
			in.states[src.ID()] = st
		}
		st.Previous = st.Current
		for b := device.Button(0); b < device.ButtonCount; b++ {
			st.Current[b] = src.DigitalButton(b)
		}
	}
}

func (in *Inputs) Sources() []device.Source {
	return in.sources
}

// JustPressed reports whether b went down on src this frame.
func (in *Inputs) JustPressed(src device.SourceID, b device.Button) bool {
	st, ok := in.states[src]
	if !ok {
		return false
	}
	return st.Current[b] && !st.Previous[b]
}

// InputTranslator turns device state into actions for the characters bound
// to each source. It never touches character state.
type InputTranslator struct {
	Inputs      *Inputs
	Assignments *control.Assignments
	Bus         *actions.Queue
}

func (t *InputTranslator) Update(_ *ecs.ECS) {
	for _, src := range t.Inputs.Sources() {
		target, ok := t.target(src.ID())
		if !ok {
			continue
		}
		if src.ID().IsKeyboard() {
			t.keyboard(src, target)
		} else {
			t.gamepad(src, target)
		}
	}
}

// target resolves the character a source drives. The keyboard falls back to
// the first-bound character when it has none of its own.
func (t *InputTranslator) target(id device.SourceID) (donburi.Entity, bool) {
	if e, ok := t.Assignments.Lookup(id); ok {
		return e, true
	}
	if id.IsKeyboard() && cfg.Input.KeyboardDrivesFirst {
		if first, ok := t.Assignments.First(); ok {
			return first.Character, true
		}
	}
	return donburi.Null, false
}

func (t *InputTranslator) keyboard(src device.Source, target donburi.Entity) {
	id := src.ID()

	var dir float64
	if src.DigitalButton(device.KeyRight) || src.DigitalButton(device.KeyD) {
		dir++
	}
	if src.DigitalButton(device.KeyLeft) || src.DigitalButton(device.KeyA) {
		dir--
	}
	if math.Abs(dir) > cfg.Input.MoveThreshold {
		t.Bus.Push(actions.NewMove(target, dir))
	}

	if t.Inputs.JustPressed(id, device.KeySpace) {
		t.Bus.Push(actions.NewJump(target))
	}

	// No aim stick on a keyboard: the fire key shoots along a fixed direction
	if t.Inputs.JustPressed(id, device.KeyF) {
		t.Bus.Push(actions.NewAim(target, cfg.Input.KeyboardAimX, cfg.Input.KeyboardAimY))
		t.Bus.Push(actions.NewFire(target))
	}
}

func (t *InputTranslator) gamepad(src device.Source, target donburi.Entity) {
	if x := src.AnalogAxis(device.LeftStickX); math.Abs(x) > cfg.Input.MoveThreshold {
		t.Bus.Push(actions.NewMove(target, x))
	}

	if src.AnalogButton(device.GamepadSouth) > cfg.Input.JumpThreshold {
		t.Bus.Push(actions.NewJump(target))
	}

	// A centred stick keeps the previous aim
	ax, ay := src.AnalogAxis(device.RightStickX), src.AnalogAxis(device.RightStickY)
	if math.Abs(ax) > cfg.Input.AimThreshold || math.Abs(ay) > cfg.Input.AimThreshold {
		t.Bus.Push(actions.NewAim(target, ax, ay))
	}

	if src.AnalogButton(device.GamepadRightTrigger) > cfg.Input.FireThreshold {
		t.Bus.Push(actions.NewFire(target))
	}
}
