package device

// Virtual is a Source whose state is set by code. Scripts and tests drive the
// simulation through it.
type Virtual struct {
	id      SourceID
	buttons [ButtonCount]bool
	analog  [ButtonCount]float64
	axes    [AxisCount]float64
}

func NewVirtual(id SourceID) *Virtual {
	return &Virtual{id: id}
}

func (v *Virtual) ID() SourceID { return v.id }

func (v *Virtual) DigitalButton(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return v.buttons[b]
}

func (v *Virtual) AnalogButton(b Button) float64 {
	if b < 0 || b >= ButtonCount {
		return 0
	}
	return v.analog[b]
}

func (v *Virtual) AnalogAxis(a Axis) float64 {
	if a < 0 || a >= AxisCount {
		return 0
	}
	return v.axes[a]
}

// Press holds b fully down.
func (v *Virtual) Press(b Button) {
	v.SetButton(b, 1)
}

func (v *Virtual) Release(b Button) {
	v.SetButton(b, 0)
}

// SetButton sets an analog button value; the digital state follows it past half travel.
func (v *Virtual) SetButton(b Button, value float64) {
	if b < 0 || b >= ButtonCount {
		return
	}
	v.analog[b] = clamp(value, 0, 1)
	v.buttons[b] = v.analog[b] > 0.5
}

func (v *Virtual) SetAxis(a Axis, value float64) {
	if a < 0 || a >= AxisCount {
		return
	}
	v.axes[a] = clamp(value, -1, 1)
}

// Clear releases every button and centres every axis.
func (v *Virtual) Clear() {
	v.buttons = [ButtonCount]bool{}
	v.analog = [ButtonCount]float64{}
	v.axes = [AxisCount]float64{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rig is a fixed set of virtual sources, returned by Poll in creation order.
type Rig struct {
	sources []*Virtual
}

// Add returns the source with the given id, creating it if needed.
func (r *Rig) Add(id SourceID) *Virtual {
	for _, s := range r.sources {
		if s.id == id {
			return s
		}
	}
	s := NewVirtual(id)
	r.sources = append(r.sources, s)
	return s
}

func (r *Rig) Poll() []Source {
	out := make([]Source, len(r.sources))
	for i, s := range r.sources {
		out[i] = s
	}
	return out
}
