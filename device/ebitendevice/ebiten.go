// Package ebitendevice reads the keyboard and standard-layout gamepads through ebiten.
package ebitendevice

import (
	"github.com/automoto/gunline/device"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyBindings = map[device.Button]ebiten.Key{
	device.KeyLeft:  ebiten.KeyLeft,
	device.KeyRight: ebiten.KeyRight,
	device.KeyA:     ebiten.KeyA,
	device.KeyD:     ebiten.KeyD,
	device.KeySpace: ebiten.KeySpace,
	device.KeyF:     ebiten.KeyF,
	device.KeyEnter: ebiten.KeyEnter,
}

var padButtons = map[device.Button]ebiten.StandardGamepadButton{
	device.GamepadSouth:        ebiten.StandardGamepadButtonRightBottom,
	device.GamepadRightTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
}

var padAxes = map[device.Axis]ebiten.StandardGamepadAxis{
	device.LeftStickX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	device.LeftStickY:  ebiten.StandardGamepadAxisLeftStickVertical,
	device.RightStickX: ebiten.StandardGamepadAxisRightStickHorizontal,
	device.RightStickY: ebiten.StandardGamepadAxisRightStickVertical,
}

type keyboard struct{}

func (keyboard) ID() device.SourceID { return device.Keyboard }

func (keyboard) DigitalButton(b device.Button) bool {
	key, ok := keyBindings[b]
	return ok && ebiten.IsKeyPressed(key)
}

func (k keyboard) AnalogButton(b device.Button) float64 {
	if k.DigitalButton(b) {
		return 1
	}
	return 0
}

func (keyboard) AnalogAxis(device.Axis) float64 { return 0 }

type gamepad struct {
	id  ebiten.GamepadID
	src device.SourceID
}

func (g gamepad) ID() device.SourceID { return g.src }

func (g gamepad) DigitalButton(b device.Button) bool {
	btn, ok := padButtons[b]
	return ok && ebiten.IsStandardGamepadButtonPressed(g.id, btn)
}

func (g gamepad) AnalogButton(b device.Button) float64 {
	btn, ok := padButtons[b]
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadButtonValue(g.id, btn)
}

// AnalogAxis flips the vertical axes so +Y is up.
func (g gamepad) AnalogAxis(a device.Axis) float64 {
	axis, ok := padAxes[a]
	if !ok {
		return 0
	}
	v := ebiten.StandardGamepadAxisValue(g.id, axis)
	if a == device.LeftStickY || a == device.RightStickY {
		v = -v
	}
	return v
}

// Devices polls the keyboard plus every gamepad with a standard layout.
type Devices struct {
	gamepadIDs []ebiten.GamepadID
	sources    []device.Source
}

func New() *Devices {
	return &Devices{}
}

func (d *Devices) Poll() []device.Source {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	d.sources = append(d.sources[:0], keyboard{})
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		d.sources = append(d.sources, gamepad{id: id, src: device.Gamepad(int(id))})
	}
	return d.sources
}
