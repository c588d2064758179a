// Package registry maps mode IDs to game factories. Each mode package
// registers itself from init, so hosts pick modes up with a blank import.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable mode. Implementations are pure simulation: the host
// measures time, samples input and presents the draw list.
type Game interface {
	// ID is the stable name used on the command line and in score history.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset rebuilds the level. The difficulty in cfg selects the
	// parameter table; it is read only here.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds of wall-clock time.
	// The game does not clamp dt.
	Step(dt float64, in core.InputFrame) core.StepResult

	// DrawList describes the current frame as shapes in world coordinates.
	DrawList() core.DrawList

	// State reports score, pause and game over.
	State() core.GameState
}

// GameInfo names a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet reset, game.
type Factory func() Game

type entry struct {
	info GameInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode under id. It panics when id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, make: f}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
