// Package scene defines the screens the game loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop forwards each fixed tick to
// the current scene and switches when Update hands back a successor.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next replaces
	// the current scene; an error stops the game.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes
	OnExit()
}
