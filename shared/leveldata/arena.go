package leveldata

// DefaultArena is the built-in test level: a ground slab, two floating
// ledges, a block at each end, two ramps and a loose crate.
func DefaultArena() *Level {
	return &Level{
		Name:   "arena",
		Width:  1400,
		Height: 800,
		Solids: []Solid{
			{X: 0, Y: -175, W: 1100, H: 50},
			{X: 175, Y: -35, W: 300, H: 25},
			{X: -175, Y: 0, W: 300, H: 25},
			{X: 475, Y: -110, W: 150, H: 80},
			{X: -475, Y: -110, W: 150, H: 80},
			{
				X: -275, Y: -150, W: 250, H: 160,
				Points: []Point{{-125, 80}, {-125, 0}, {125, 0}},
			},
			{
				X: 380, Y: -110, W: 40, H: 80,
				Points: []Point{{-20, -40}, {20, -40}, {20, 40}},
			},
		},
		Boxes: []Box{
			{X: 50, Y: -100, W: 30, H: 30},
		},
	}
}
