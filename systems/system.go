package systems

import (
	"errors"

	"github.com/automoto/joyplat/tags"
	"github.com/yohamta/donburi"
)

// System is one stage of a tick. A stage that fails aborts the tick.
type System func(w donburi.World) error

// ErrNoConsole is returned when the world has no console entity.
var ErrNoConsole = errors.New("no console entity")

// Run executes systems in order and stops at the first error.
func Run(w donburi.World, systems ...System) error {
	for _, s := range systems {
		if err := s(w); err != nil {
			return err
		}
	}
	return nil
}

// GamePipeline is the full tick: read the stick, mirror it on the
// indicators, advance the game, draw, push to the panel, then commit.
func GamePipeline() []System {
	return []System{
		UpdateInput,
		UpdateIndicators,
		UpdateGame,
		DrawFrame,
		FlushDisplay,
		CommitState,
	}
}

// JoystickPipeline only mirrors the stick on the indicators.
func JoystickPipeline() []System {
	return []System{
		UpdateInput,
		UpdateIndicators,
	}
}

func console(w donburi.World) (*donburi.Entry, error) {
	e, ok := tags.Console.First(w)
	if !ok {
		return nil, ErrNoConsole
	}
	return e, nil
}
