package systems

import (
	"testing"

	"github.com/automoto/gunline/actions"
	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/control"
	"github.com/automoto/gunline/device"
	"github.com/yohamta/donburi"
)

type inputHarness struct {
	rig         *device.Rig
	inputs      *Inputs
	assignments *control.Assignments
	bus         *actions.Queue
	translator  *InputTranslator
}

func newInputHarness(t *testing.T) *inputHarness {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	h := &inputHarness{
		rig:         &device.Rig{},
		assignments: control.NewAssignments(),
		bus:         &actions.Queue{},
	}
	h.inputs = NewInputs(h.rig)
	h.translator = &InputTranslator{Inputs: h.inputs, Assignments: h.assignments, Bus: h.bus}
	return h
}

func (h *inputHarness) bind(t *testing.T, src device.SourceID, e donburi.Entity) {
	t.Helper()
	if _, ok := h.assignments.BindOnce(src, func() (donburi.Entity, bool) { return e, true }); !ok {
		t.Fatalf("bind %v -> %v failed", src, e)
	}
}

// frame polls the devices, runs the translator and returns what it emitted.
func (h *inputHarness) frame() []actions.Action {
	h.bus.Reset()
	h.inputs.Poll()
	h.translator.Update(nil)

	var out []actions.Action
	h.bus.Drain(func(a actions.Action) { out = append(out, a) })
	return out
}

func TestGamepadThresholds(t *testing.T) {
	target := donburi.Entity(7)

	tests := []struct {
		name  string
		setup func(v *device.Virtual)
		want  []actions.Action
	}{
		{
			name:  "idle pad emits nothing",
			setup: func(v *device.Virtual) {},
		},
		{
			name:  "stick inside dead zone",
			setup: func(v *device.Virtual) { v.SetAxis(device.LeftStickX, 0.005) },
		},
		{
			name:  "stick past dead zone moves",
			setup: func(v *device.Virtual) { v.SetAxis(device.LeftStickX, -0.5) },
			want:  []actions.Action{actions.NewMove(target, -0.5)},
		},
		{
			name:  "light jump press ignored",
			setup: func(v *device.Virtual) { v.SetButton(device.GamepadSouth, 0.05) },
		},
		{
			name:  "jump press",
			setup: func(v *device.Virtual) { v.SetButton(device.GamepadSouth, 0.2) },
			want:  []actions.Action{actions.NewJump(target)},
		},
		{
			name: "right stick aims",
			setup: func(v *device.Virtual) {
				v.SetAxis(device.RightStickX, 0)
				v.SetAxis(device.RightStickY, 0.8)
			},
			want: []actions.Action{actions.NewAim(target, 0, 0.8)},
		},
		{
			name:  "trigger fires",
			setup: func(v *device.Virtual) { v.SetButton(device.GamepadRightTrigger, 0.3) },
			want:  []actions.Action{actions.NewFire(target)},
		},
		{
			name: "everything at once keeps move, jump, aim, fire order",
			setup: func(v *device.Virtual) {
				v.SetAxis(device.LeftStickX, 1)
				v.Press(device.GamepadSouth)
				v.SetAxis(device.RightStickX, 1)
				v.Press(device.GamepadRightTrigger)
			},
			want: []actions.Action{
				actions.NewMove(target, 1),
				actions.NewJump(target),
				actions.NewAim(target, 1, 0),
				actions.NewFire(target),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newInputHarness(t)
			pad := h.rig.Add(device.Gamepad(0))
			h.bind(t, pad.ID(), target)
			tt.setup(pad)

			got := h.frame()
			if len(got) != len(tt.want) {
				t.Fatalf("emitted %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("action %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGamepadJumpRepeatsWhileHeld(t *testing.T) {
	h := newInputHarness(t)
	pad := h.rig.Add(device.Gamepad(0))
	h.bind(t, pad.ID(), 3)
	pad.Press(device.GamepadSouth)

	for i := 0; i < 3; i++ {
		if got := h.frame(); len(got) != 1 || got[0].Kind != actions.Jump {
			t.Errorf("frame %d emitted %v, want one Jump", i, got)
		}
	}
}

func TestKeyboardEdgesAndDirection(t *testing.T) {
	h := newInputHarness(t)
	kb := h.rig.Add(device.Keyboard)
	target := donburi.Entity(11)
	h.bind(t, kb.ID(), target)

	kb.Press(device.KeyD)
	kb.Press(device.KeySpace)
	got := h.frame()
	want := []actions.Action{actions.NewMove(target, 1), actions.NewJump(target)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("first frame emitted %v, want %v", got, want)
	}

	// Holding space does not jump again; left and right cancel out
	kb.Press(device.KeyLeft)
	if got := h.frame(); len(got) != 0 {
		t.Errorf("second frame emitted %v, want nothing", got)
	}

	kb.Clear()
	kb.Press(device.KeyF)
	got = h.frame()
	want = []actions.Action{actions.NewAim(target, 0.5, 0.5), actions.NewFire(target)}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("fire frame emitted %v, want %v", got, want)
	}
	if got := h.frame(); len(got) != 0 {
		t.Errorf("held fire key emitted %v, want nothing", got)
	}
}

func TestKeyboardTargeting(t *testing.T) {
	t.Run("drives first bound character", func(t *testing.T) {
		h := newInputHarness(t)
		kb := h.rig.Add(device.Keyboard)
		h.bind(t, device.Gamepad(1), 5)
		h.bind(t, device.Gamepad(0), 6)
		kb.Press(device.KeyRight)

		got := h.frame()
		if len(got) != 1 || got[0].Target != 5 {
			t.Errorf("emitted %v, want one Move for entity 5", got)
		}
	})

	t.Run("fallback disabled", func(t *testing.T) {
		h := newInputHarness(t)
		cfg.Input.KeyboardDrivesFirst = false
		kb := h.rig.Add(device.Keyboard)
		h.bind(t, device.Gamepad(0), 5)
		kb.Press(device.KeyRight)

		if got := h.frame(); len(got) != 0 {
			t.Errorf("emitted %v, want nothing", got)
		}
	})

	t.Run("own binding wins", func(t *testing.T) {
		h := newInputHarness(t)
		kb := h.rig.Add(device.Keyboard)
		h.bind(t, device.Gamepad(0), 5)
		h.bind(t, kb.ID(), 9)
		kb.Press(device.KeyRight)

		got := h.frame()
		if len(got) != 1 || got[0].Target != 9 {
			t.Errorf("emitted %v, want one Move for entity 9", got)
		}
	})
}

func TestUnboundSourcesEmitNothing(t *testing.T) {
	h := newInputHarness(t)
	pad := h.rig.Add(device.Gamepad(0))
	kb := h.rig.Add(device.Keyboard)
	pad.SetAxis(device.LeftStickX, 1)
	pad.Press(device.GamepadRightTrigger)
	kb.Press(device.KeyRight)

	if got := h.frame(); len(got) != 0 {
		t.Errorf("emitted %v with no bindings, want nothing", got)
	}
}
