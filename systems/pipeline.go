package systems

import (
	"log/slog"

	"github.com/automoto/gunline/actions"
	"github.com/automoto/gunline/control"
	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Frame is the per-frame state every stage reads.
type Frame struct {
	Index uint64
	// Seconds since the previous frame
	DT float64
}

type PipelineOptions struct {
	World       physics.World
	Devices     device.Devices
	Clock       Clock
	SpawnPoints []physics.Vec2
	Logger      *slog.Logger
}

// Pipeline owns the simulation services and runs the stages in a fixed order
// each frame:
//
//	frame start → input → grounded → damping → weapon → projectile →
//	spawner → movement → platforms → physics step
//
// Damping runs before the movement resolver, so a Move applied this frame is
// first damped next frame.
type Pipeline struct {
	ECS         *ecs.ECS
	World       physics.World
	Bus         *actions.Queue
	Assignments *control.Assignments
	Inputs      *Inputs
	Frame       *Frame
	Spawner     *CharacterSpawner

	clock  Clock
	logger *slog.Logger
}

func NewPipeline(opts PipelineOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pipeline{
		ECS:         ecs.NewECS(donburi.NewWorld()),
		World:       opts.World,
		Bus:         &actions.Queue{},
		Assignments: control.NewAssignments(),
		Inputs:      NewInputs(opts.Devices),
		Frame:       &Frame{},
		clock:       opts.Clock,
		logger:      logger,
	}
	p.Spawner = &CharacterSpawner{
		Inputs:      p.Inputs,
		Assignments: p.Assignments,
		World:       p.World,
		Logger:      logger,
		SpawnPoints: opts.SpawnPoints,
	}

	input := &InputTranslator{Inputs: p.Inputs, Assignments: p.Assignments, Bus: p.Bus}
	grounded := &GroundedDetector{World: p.World}
	damping := &DampingStage{World: p.World}
	weapon := &WeaponStage{World: p.World, Frame: p.Frame, Logger: logger}
	projectile := &ProjectileStage{World: p.World, Frame: p.Frame, Logger: logger}
	movement := &MovementResolver{Bus: p.Bus, World: p.World, Frame: p.Frame}
	platforms := &PlatformStage{World: p.World, Frame: p.Frame}
	step := &PhysicsStep{World: p.World, Frame: p.Frame}

	p.ECS.AddSystem(p.startFrame)
	p.ECS.AddSystem(input.Update)
	p.ECS.AddSystem(grounded.Update)
	p.ECS.AddSystem(damping.Update)
	p.ECS.AddSystem(weapon.Update)
	p.ECS.AddSystem(projectile.Update)
	p.ECS.AddSystem(p.Spawner.Update)
	p.ECS.AddSystem(movement.Update)
	p.ECS.AddSystem(platforms.Update)
	p.ECS.AddSystem(step.Update)

	return p
}

// Update runs one frame.
func (p *Pipeline) Update() {
	p.ECS.Update()
}

func (p *Pipeline) startFrame(_ *ecs.ECS) {
	p.Frame.Index++
	p.Frame.DT = p.clock.DeltaTime()
	p.Bus.Reset()
	p.Inputs.Poll()
}
