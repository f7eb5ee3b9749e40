package state

import (
	"tilewalk/pkg/engine/world"
)

// Actor is the single grid-bound character. Its world position is a cache of
// the grid coordinates and is only ever recomputed from them.
type Actor struct {
	GridX int
	GridY int

	position world.Vec2
}

// Position returns the actor's world position, (GridX*tileSize, GridY*tileSize)
// as of the last Sync.
func (a *Actor) Position() world.Vec2 {
	return a.position
}

// Sync recomputes the world position from the grid coordinates.
func (a *Actor) Sync(tileSize float64) {
	a.position = world.GridToWorld(a.GridX, a.GridY, tileSize)
}

// Game represents the state of a running map view
type Game struct {
	Grid  *world.Grid
	Actor Actor

	TileSize    int
	TilesPerRow int
	Scale       float64

	// Running is cleared by an exit signal; the host stops before the next frame.
	Running bool

	Frame uint64 // Number of completed update steps
	Moves int    // Number of unit moves applied
}

// NewGame creates a game on grid with the actor at startX/startY
func NewGame(grid *world.Grid, tileSize, tilesPerRow int, scale float64, startX, startY int) *Game {
	g := &Game{
		Grid:        grid,
		TileSize:    tileSize,
		TilesPerRow: tilesPerRow,
		Scale:       scale,
		Running:     true,
	}
	g.SetActorGrid(startX, startY)
	return g
}

// TileSizeF returns the tile size as a float for world-space math.
func (g *Game) TileSizeF() float64 {
	return float64(g.TileSize)
}

// SetActorGrid moves the actor to x/y and refreshes its world position.
func (g *Game) SetActorGrid(x, y int) {
	g.Actor.GridX = x
	g.Actor.GridY = y
	g.Actor.Sync(g.TileSizeF())
}

// Quit stops the run loop
func (g *Game) Quit() {
	g.Running = false
}
