package device

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step holds a set of inputs on one source for a run of frames.
type Step struct {
	Source string `yaml:"source"`
	Frame  int    `yaml:"frame"`
	// Number of frames the inputs are held, default 1
	Hold     int                `yaml:"hold"`
	Press    []string           `yaml:"press"`
	Axes     map[string]float64 `yaml:"axes"`
	Triggers map[string]float64 `yaml:"triggers"`
}

// Script is an input recording replayed by Scripted.
//
//	frames: 300
//	steps:
//	  - {source: gamepad:0, frame: 0, press: [south]}
//	  - {source: gamepad:0, frame: 10, hold: 60, axes: {left_x: 1}}
type Script struct {
	Frames int    `yaml:"frames"`
	Steps  []Step `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

type compiledStep struct {
	source   SourceID
	from, to int
	buttons  map[Button]float64
	axes     map[Axis]float64
}

// Scripted replays a Script. Every source the script mentions is connected
// from the first frame; each Poll advances one frame.
type Scripted struct {
	rig    Rig
	steps  []compiledStep
	frames int
	frame  int
}

func NewScripted(s *Script) (*Scripted, error) {
	sc := &Scripted{frames: s.Frames}
	for i, st := range s.Steps {
		id, err := ParseSourceID(st.Source)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		hold := st.Hold
		if hold <= 0 {
			hold = 1
		}
		cs := compiledStep{
			source:  id,
			from:    st.Frame,
			to:      st.Frame + hold,
			buttons: make(map[Button]float64),
			axes:    make(map[Axis]float64),
		}
		for _, name := range st.Press {
			b, err := ParseButton(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			cs.buttons[b] = 1
		}
		for name, v := range st.Triggers {
			b, err := ParseButton(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			cs.buttons[b] = v
		}
		for name, v := range st.Axes {
			a, err := ParseAxis(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			cs.axes[a] = v
		}
		sc.rig.Add(id)
		sc.steps = append(sc.steps, cs)
		if s.Frames <= 0 && cs.to > sc.frames {
			sc.frames = cs.to
		}
	}
	return sc, nil
}

func (s *Scripted) Poll() []Source {
	for _, v := range s.rig.sources {
		v.Clear()
	}
	for _, st := range s.steps {
		if s.frame < st.from || s.frame >= st.to {
			continue
		}
		v := s.rig.Add(st.source)
		for b, value := range st.buttons {
			v.SetButton(b, value)
		}
		for a, value := range st.axes {
			v.SetAxis(a, value)
		}
	}
	s.frame++
	return s.rig.Poll()
}

// Done reports whether every scripted frame has been polled.
func (s *Scripted) Done() bool {
	return s.frame >= s.frames
}

func (s *Scripted) Frame() int {
	return s.frame
}
