// Package device abstracts the raw input hardware the input translator polls:
// one Source per keyboard and per connected gamepad.
package device

import (
	"fmt"
	"strconv"
	"strings"
)

type SourceKind int

const (
	KindKeyboard SourceKind = iota
	KindGamepad
)

// SourceID is the stable identity of a control source. The keyboard is a
// single reserved identity; each gamepad is identified by its index.
type SourceID struct {
	Kind  SourceKind
	Index int
}

var Keyboard = SourceID{Kind: KindKeyboard}

func Gamepad(index int) SourceID {
	return SourceID{Kind: KindGamepad, Index: index}
}

func (id SourceID) IsKeyboard() bool {
	return id.Kind == KindKeyboard
}

func (id SourceID) String() string {
	if id.Kind == KindKeyboard {
		return "keyboard"
	}
	return "gamepad:" + strconv.Itoa(id.Index)
}

// ParseSourceID accepts "keyboard" or "gamepad:N".
func ParseSourceID(s string) (SourceID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "keyboard" {
		return Keyboard, nil
	}
	if rest, ok := strings.CutPrefix(s, "gamepad:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return SourceID{}, fmt.Errorf("bad gamepad index %q", rest)
		}
		return Gamepad(n), nil
	}
	return SourceID{}, fmt.Errorf("unknown source %q", s)
}

// Button is a digital or analog button on either device class.
type Button int

const (
	KeyLeft Button = iota
	KeyRight
	KeyA
	KeyD
	KeySpace
	KeyF
	KeyEnter
	GamepadSouth
	GamepadRightTrigger
	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{
	KeyLeft:             "left",
	KeyRight:            "right",
	KeyA:                "a",
	KeyD:                "d",
	KeySpace:            "space",
	KeyF:                "f",
	KeyEnter:            "enter",
	GamepadSouth:        "south",
	GamepadRightTrigger: "right_trigger",
}

func (b Button) String() string {
	if b >= 0 && b < ButtonCount {
		return buttonNames[b]
	}
	return "button(" + strconv.Itoa(int(b)) + ")"
}

func ParseButton(s string) (Button, error) {
	for b, name := range buttonNames {
		if name == s {
			return Button(b), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

type Axis int

const (
	LeftStickX Axis = iota
	LeftStickY
	RightStickX
	RightStickY
	AxisCount // Must be last - used for array sizing
)

var axisNames = [AxisCount]string{
	LeftStickX:  "left_x",
	LeftStickY:  "left_y",
	RightStickX: "right_x",
	RightStickY: "right_y",
}

func (a Axis) String() string {
	if a >= 0 && a < AxisCount {
		return axisNames[a]
	}
	return "axis(" + strconv.Itoa(int(a)) + ")"
}

func ParseAxis(s string) (Axis, error) {
	for a, name := range axisNames {
		if name == s {
			return Axis(a), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Source is the instantaneous state of one device. Stick axes are in [-1, 1]
// with +Y up; analog buttons are in [0, 1].
type Source interface {
	ID() SourceID
	DigitalButton(b Button) bool
	AnalogAxis(a Axis) float64
	AnalogButton(b Button) float64
}

// Devices enumerates the connected sources. Poll is called once per frame and
// samples every device.
type Devices interface {
	Poll() []Source
}
