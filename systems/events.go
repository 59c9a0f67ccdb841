package systems

import (
	"log"

	"github.com/automoto/lodestone/assets"
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/cursor"
	"github.com/automoto/lodestone/target"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

const (
	hoverScale = 1.6
	restScale  = 1.0
)

// TargetEvent carries cursor transitions into the world. They are queued
// while the cursor ticks and delivered by ProcessEvents.
var TargetEvent = events.NewEventType[target.Event]()

// ForwardTargetEvents republishes every broadcast event of c on w.
func ForwardTargetEvents(w donburi.World, c *cursor.Cursor) (cancel func()) {
	return c.Subscribe(func(ev target.Event) {
		TargetEvent.Publish(w, ev)
	})
}

// ProcessEvents delivers queued world events. Must run AFTER UpdateCursor.
func ProcessEvents(ecs *ecs.ECS) {
	TargetEvent.ProcessEvents(ecs.World)
}

// OnTargetEvent records the event for the HUD, scales the cursor up while the
// pointer hovers a target and queues the hover cues.
func OnTargetEvent(w donburi.World, ev target.Event) {
	entry, ok := components.Cursor.First(w)
	if !ok {
		return
	}
	if cfg.C.Debug.LogEvents && ev.Type != target.Move {
		log.Printf("cursor: %s %s", ev.Name(), ev.Target.ID)
	}
	if ev.Type != target.Move {
		components.EventLog.Get(entry).Push(ev.Name() + " " + ev.Target.ID)
	}

	if ev.Point != target.Pointer {
		return
	}
	scale, ok := components.Cursor.Get(entry).Engine.Property("cursor-scale")
	if !ok {
		return
	}
	switch ev.Type {
	case target.Enter:
		scale.SetValue(hoverScale)
		PlaySFX(w, assets.SoundEnter)
	case target.Leave:
		scale.SetValue(restScale)
		PlaySFX(w, assets.SoundLeave)
	}
}
