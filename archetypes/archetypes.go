package archetypes

import (
	"github.com/automoto/joyplat/components"
	"github.com/automoto/joyplat/tags"
	"github.com/yohamta/donburi"
)

var (
	Joystick = newArchetype(
		tags.Console,
		components.Devices,
		components.Control,
		components.Stats,
	)
	Game = newArchetype(
		tags.Console,
		tags.Game,
		components.Devices,
		components.Control,
		components.Stats,
		components.Session,
		components.Pending,
		components.Frame,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
