package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/lodestone/assets"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/stage"
	"github.com/automoto/lodestone/systems"
	"github.com/automoto/lodestone/systems/factory"
	"github.com/automoto/lodestone/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlaygroundScene shows one TMX scene with the custom cursor on top. Tab
// switches to the next scene in the same directory.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	settingsUI   *ui.SettingsUI
	sceneChanger SceneChanger
	scenePath    string
	watcher      *cfg.Watcher
	configPath   string
	once         sync.Once
	failed       bool
}

// NewPlaygroundScene creates a scene for the TMX file at scenePath inside the
// embedded assets. A non-nil watcher hot reloads configPath.
func NewPlaygroundScene(sc SceneChanger, scenePath string, watcher *cfg.Watcher, configPath string) *PlaygroundScene {
	return &PlaygroundScene{
		sceneChanger: sc,
		scenePath:    scenePath,
		watcher:      watcher,
		configPath:   configPath,
	}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	if ps.failed {
		return
	}
	ps.ecs.Update()
	ps.settingsUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if next, ok := ps.nextScene(); ok {
			ps.close()
			ps.sceneChanger.ChangeScene(NewPlaygroundScene(ps.sceneChanger, next, ps.watcher, ps.configPath))
		}
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	bg, err := cfg.ParseColor(cfg.C.Level.Background)
	if err != nil {
		bg = color.RGBA{A: 255}
	}
	screen.Fill(bg)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	ps.settingsUI = ui.NewSettingsUI(ecs)

	ecs.AddSystem(systems.UpdateConfigReload)
	ecs.AddSystem(systems.UpdateKeys)
	ecs.AddSystem(systems.UpdateObjects)
	// Input must be sampled before the cursor ticks; events queued by the
	// tick are delivered right after it.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCursor)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawElements)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, ps.settingsUI.Draw)
	ecs.AddRenderer(cfg.Overlay, systems.DrawCursor)

	ps.ecs = ecs

	level, err := factory.CreateLevel(ps.ecs, assets.FS(), ps.scenePath)
	if err != nil && ps.scenePath != cfg.C.Level.Path {
		log.Printf("Warning: could not load %s, falling back to %s: %v", ps.scenePath, cfg.C.Level.Path, err)
		ps.scenePath = cfg.C.Level.Path
		level, err = factory.CreateLevel(ps.ecs, assets.FS(), ps.scenePath)
	}
	if err != nil {
		log.Printf("Warning: could not load scene: %v", err)
		ps.failed = true
		return
	}
	scene := components.Level.Get(level).CurrentScene

	spaceEntry := factory.CreateSpace(ps.ecs, scene.MapWidth, scene.MapHeight, cfg.C.Level.CellSize, cfg.C.Level.CellSize)
	space := components.Space.Get(spaceEntry)
	st := stage.New(ps.ecs.World, space)

	for _, el := range scene.Elements {
		factory.CreateElement(ps.ecs, st, space, el)
	}

	cursorEntry, err := factory.CreateCursor(ps.ecs, st, scene)
	if err != nil {
		log.Printf("Warning: could not create cursor: %v", err)
		ps.failed = true
		return
	}
	cur := components.Cursor.Get(cursorEntry)
	cur.Cancel = systems.ForwardTargetEvents(ps.ecs.World, cur.Engine)
	systems.TargetEvent.Subscribe(ps.ecs.World, systems.OnTargetEvent)

	if ps.watcher != nil {
		watch := ps.ecs.World.Entry(ps.ecs.World.Create(components.ConfigWatch))
		components.ConfigWatch.SetValue(watch, components.ConfigWatchData{
			Path:    ps.configPath,
			Watcher: ps.watcher,
		})
	}
}

// nextScene returns the path of the scene after the current one.
func (ps *PlaygroundScene) nextScene() (string, bool) {
	entry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return "", false
	}
	level := components.Level.Get(entry)
	if len(level.Scenes) < 2 {
		return "", false
	}
	next := level.Scenes[(level.SceneIndex+1)%len(level.Scenes)]
	return next.Path, true
}

func (ps *PlaygroundScene) close() {
	entry, ok := components.Cursor.First(ps.ecs.World)
	if !ok {
		return
	}
	cur := components.Cursor.Get(entry)
	if cur.Cancel != nil {
		cur.Cancel()
	}
	cur.Engine.Close()
}
