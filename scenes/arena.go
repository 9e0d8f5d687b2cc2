package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	cfg "github.com/automoto/gunline/config"
	"github.com/automoto/gunline/device"
	"github.com/automoto/gunline/persistence"
	"github.com/automoto/gunline/shared/leveldata"
	"github.com/automoto/gunline/sim"
	"github.com/automoto/gunline/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ArenaOptions struct {
	Level   *leveldata.Level
	Devices device.Devices
	Clock   systems.Clock
	// Settings, when set, lets F5 save the live tuning.
	Settings *persistence.Settings
	Logger   *slog.Logger
}

// ArenaScene runs the simulation in a window and draws it with the debug renderer.
type ArenaScene struct {
	opts   ArenaOptions
	sim    *sim.Sim
	camera *Camera
	hud    *HUD
	once   sync.Once
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &ArenaScene{opts: opts}
}

func (a *ArenaScene) Update() {
	a.once.Do(a.configure)
	a.sim.Update()
	a.camera.Update(a.sim.Pipeline.ECS, a.sim.Space, a.sim.Level)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.DrawProbes = !cfg.Debug.DrawProbes
	}
	if a.opts.Settings != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.opts.Settings.SaveCurrent(); err != nil {
			a.opts.Logger.Warn("could not save tuning", "err", err)
		} else {
			a.opts.Logger.Info("tuning saved")
		}
	}
}

func (a *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if a.sim == nil {
		return
	}
	a.sim.Pipeline.ECS.Draw(screen)
	if a.hud != nil {
		a.hud.Draw(screen, a.sim.Summary(), cfg.Debug.DrawProbes)
	}
}

func (a *ArenaScene) configure() {
	a.sim = sim.New(sim.Options{
		Level:   a.opts.Level,
		Devices: a.opts.Devices,
		Clock:   a.opts.Clock,
		Logger:  a.opts.Logger,
	})

	a.camera = &Camera{}
	debug := &DebugRenderer{Space: a.sim.Space, Camera: a.camera}
	a.sim.Pipeline.ECS.AddRenderer(cfg.Default, debug.Draw)

	hud, err := NewHUD()
	if err != nil {
		a.opts.Logger.Warn("hud disabled", "err", err)
	} else {
		a.hud = hud
	}

	a.opts.Logger.Info("arena ready", "level", a.sim.Level.Name, "bodies", a.sim.Space.Len())
}
