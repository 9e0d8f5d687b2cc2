package device

import (
	"testing"
)

const testScript = `
frames: 5
steps:
  - {source: keyboard, frame: 0, press: [enter]}
  - {source: "gamepad:1", frame: 1, hold: 2, axes: {left_x: -0.5}, triggers: {right_trigger: 0.3}}
`

func TestScriptedReplay(t *testing.T) {
	s, err := ParseScript([]byte(testScript))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	sc, err := NewScripted(s)
	if err != nil {
		t.Fatalf("NewScripted() error = %v", err)
	}

	frame0 := sc.Poll()
	if len(frame0) != 2 {
		t.Fatalf("Poll() returned %d sources, want 2", len(frame0))
	}
	if frame0[0].ID() != Keyboard || frame0[1].ID() != Gamepad(1) {
		t.Errorf("source ids = %v, %v", frame0[0].ID(), frame0[1].ID())
	}
	if !frame0[0].DigitalButton(KeyEnter) {
		t.Error("frame 0: enter not pressed")
	}
	if frame0[1].AnalogAxis(LeftStickX) != 0 {
		t.Error("frame 0: gamepad stick moved before its step")
	}

	frame1 := sc.Poll()
	if frame1[0].DigitalButton(KeyEnter) {
		t.Error("frame 1: enter still pressed")
	}
	pad := frame1[1]
	if pad.AnalogAxis(LeftStickX) != -0.5 {
		t.Errorf("frame 1: left_x = %v, want -0.5", pad.AnalogAxis(LeftStickX))
	}
	if pad.AnalogButton(GamepadRightTrigger) != 0.3 || pad.DigitalButton(GamepadRightTrigger) {
		t.Errorf("frame 1: trigger = %v/%v, want 0.3/false",
			pad.AnalogButton(GamepadRightTrigger), pad.DigitalButton(GamepadRightTrigger))
	}

	sc.Poll()
	frame3 := sc.Poll()
	if frame3[1].AnalogAxis(LeftStickX) != 0 {
		t.Error("frame 3: stick held past its step")
	}
	if sc.Done() {
		t.Error("Done() before the last frame")
	}
	sc.Poll()
	if !sc.Done() {
		t.Error("Done() = false after all frames")
	}
}

func TestNewScriptedRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"source", `steps: [{source: joystick, press: [south]}]`},
		{"button", `steps: [{source: keyboard, press: [escape]}]`},
		{"axis", `steps: [{source: "gamepad:0", axes: {dpad: 1}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScript([]byte(tt.script))
			if err != nil {
				t.Fatalf("ParseScript() error = %v", err)
			}
			if _, err := NewScripted(s); err == nil {
				t.Error("NewScripted() error = nil, want error")
			}
		})
	}
}

func TestParseSourceID(t *testing.T) {
	tests := []struct {
		in      string
		want    SourceID
		wantErr bool
	}{
		{"keyboard", Keyboard, false},
		{"gamepad:3", Gamepad(3), false},
		{"Gamepad:0", Gamepad(0), false},
		{"gamepad:-1", SourceID{}, true},
		{"mouse", SourceID{}, true},
	}
	for _, tt := range tests {
		got, err := ParseSourceID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSourceID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSourceID(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.in && tt.in != "Gamepad:0" {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}

func TestVirtualClamps(t *testing.T) {
	v := NewVirtual(Gamepad(0))
	v.SetAxis(RightStickY, 3)
	v.SetButton(GamepadSouth, -1)
	if v.AnalogAxis(RightStickY) != 1 {
		t.Errorf("axis = %v, want clamped 1", v.AnalogAxis(RightStickY))
	}
	if v.AnalogButton(GamepadSouth) != 0 {
		t.Errorf("button = %v, want clamped 0", v.AnalogButton(GamepadSouth))
	}
	if v.DigitalButton(ButtonCount) || v.AnalogAxis(AxisCount) != 0 {
		t.Error("out of range ids should read as released")
	}
}
