// Package registry maps game IDs to factories. Games register themselves in
// init(), so the terminal host, the SSH server and the CLI can create a game
// by ID without importing its package.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/neon-ascent/internal/core"
)

// Game is the interface a playable game exposes to the terminal host.
// Games contain pure logic with no Bubble Tea dependency.
type Game interface {
	// ID returns a unique identifier (e.g., "ascent").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Neon Ascent").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions and a pointer fraction.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, coins, game over, paused).
	State() core.GameState
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Title returns the display name of a registered game.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.title, ok
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Title(id)
	return ok
}
