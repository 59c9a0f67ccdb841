package systems

import (
	"log"

	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/easing"
	"github.com/yohamta/donburi/ecs"
)

// UpdateConfigReload applies the config file again after it changed on disk.
// Window and level settings need a restart; cursor and debug settings apply
// immediately.
func UpdateConfigReload(ecs *ecs.ECS) {
	entry, ok := components.ConfigWatch.First(ecs.World)
	if !ok {
		return
	}
	watch := components.ConfigWatch.Get(entry)

	select {
	case err := <-watch.Watcher.Errors:
		log.Printf("Warning: config watcher: %v", err)
	default:
	}

	if _, changed := watch.Watcher.Poll(); !changed {
		return
	}
	next, err := cfg.Load(watch.Path)
	if err != nil {
		log.Printf("Warning: config reload failed: %v", err)
		return
	}
	cfg.C = next
	ApplyCursorConfig(ecs)
	log.Printf("config reloaded from %s", watch.Path)
}

// ApplyCursorConfig pushes the live parts of cfg.C into the running cursor.
func ApplyCursorConfig(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := cfg.C.Cursor
	engine := components.Cursor.Get(entry).Engine

	fn, err := easing.ByName(c.Easing)
	if err != nil {
		log.Printf("Warning: keeping the previous cursor easing: %v", err)
	} else {
		engine.SetFollow(fn, c.Duration)
	}
	engine.SetEmitGlobal(c.EmitGlobal)
	components.EventLog.Get(entry).Max = cfg.C.Debug.EventLogSize
}
