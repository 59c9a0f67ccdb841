package archetypes

import (
	"github.com/automoto/lodestone/components"
	cfg "github.com/automoto/lodestone/config"
	"github.com/automoto/lodestone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Element = newArchetype(
		tags.Element,
		components.Element,
		components.Object,
	)
	FloatingElement = newArchetype(
		tags.Element,
		tags.Floating,
		components.Element,
		components.Object,
		components.Tween,
	)
	CursorElement = newArchetype(
		tags.Cursor,
		components.Element,
		components.Object,
	)
	Cursor = newArchetype(
		components.Cursor,
		components.Pointer,
		components.EventLog,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
