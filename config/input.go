package config

// InputConfig holds the analog thresholds used when turning device state into actions.
// Key and gamepad button layouts live with the device adapter.
type InputConfig struct {
	// A stick or trigger must exceed these to produce an action
	MoveThreshold  float64 `yaml:"move_threshold" env:"GUNLINE_MOVE_THRESHOLD"`
	JumpThreshold  float64 `yaml:"jump_threshold" env:"GUNLINE_JUMP_THRESHOLD"`
	AimThreshold   float64 `yaml:"aim_threshold" env:"GUNLINE_AIM_THRESHOLD"`
	FireThreshold  float64 `yaml:"fire_threshold" env:"GUNLINE_FIRE_THRESHOLD"`
	SpawnThreshold float64 `yaml:"spawn_threshold" env:"GUNLINE_SPAWN_THRESHOLD"`

	// Direction sent with the keyboard fire key, which has no aim stick
	KeyboardAimX float64 `yaml:"keyboard_aim_x"`
	KeyboardAimY float64 `yaml:"keyboard_aim_y"`

	// When the keyboard has no character of its own, drive the first-bound one.
	KeyboardDrivesFirst bool `yaml:"keyboard_drives_first" env:"GUNLINE_KEYBOARD_DRIVES_FIRST"`
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		MoveThreshold:       0.01,
		JumpThreshold:       0.1,
		AimThreshold:        0.01,
		FireThreshold:       0.1,
		SpawnThreshold:      0.1,
		KeyboardAimX:        0.5,
		KeyboardAimY:        0.5,
		KeyboardDrivesFirst: true,
	}
}
