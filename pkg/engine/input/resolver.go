package input

import "tilewalk/pkg/engine/world"

// Intent is what one frame of input asks the actor to do.
type Intent struct {
	DX, DY int

	// Moves lists the directions that fired this frame, in resolution order.
	Moves []world.Direction

	// Quit is set while an exit key or button is held.
	Quit bool
}

// movementKeys is the order keys are resolved in.
var movementKeys = []struct {
	key Key
	dir world.Direction
}{
	{KeyUp, world.North},
	{KeyDown, world.South},
	{KeyLeft, world.West},
	{KeyRight, world.East},
}

// JustPressed reports a rising edge: k is down in cur and was not down in prev.
func JustPressed(prev, cur Snapshot, k Key) bool {
	return cur.IsDown(k) && !prev.IsDown(k)
}

// Resolve compares two consecutive snapshots and returns at most one unit
// move per movement key. Holding a key fires once; it fires again only after
// a frame in which it was released.
func Resolve(prev, cur Snapshot) Intent {
	var intent Intent

	for _, mk := range movementKeys {
		if !JustPressed(prev, cur, mk.key) {
			continue
		}
		dx, dy := mk.dir.Delta()
		intent.DX += dx
		intent.DY += dy
		intent.Moves = append(intent.Moves, mk.dir)
	}

	intent.Quit = cur.IsDown(KeyExit) || cur.IsDown(KeyBack)

	return intent
}
