package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/fonts"
	"github.com/automoto/lodestone/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(scenePath string, watcher *config.Watcher, configPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlaygroundScene(g, scenePath, watcher, configPath)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := config.C.Window.Width, config.C.Window.Height
	g.bounds = image.Rect(0, 0, w, h)
	return w, h
}

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the built-in settings")
	watch := flag.Bool("watch", false, "Reload cursor settings when the config file changes")
	scenePath := flag.String("scene", "", "TMX scene inside the embedded assets (default from config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *configPath, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	path := config.C.Level.Path
	if *scenePath != "" {
		path = *scenePath
	}

	win := config.C.Window
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if win.TPS > 0 {
		ebiten.SetTPS(win.TPS)
	}
	// The engine draws its own cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(NewGame(path, watcher, *configPath)); err != nil {
		log.Fatal(err)
	}
}
