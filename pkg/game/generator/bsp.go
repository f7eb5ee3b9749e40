package generator

import (
	"fmt"
	"math/rand"

	"tilewalk/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() (x, y int) {
	return r.x + r.width/2, r.y + r.height/2
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge

	// MinSize is the smallest rows or cols Generate accepts: one room plus
	// its padding inside the perimeter wall.
	MinSize = minRoomSize + roomPadding + 2
)

// tileBuffer is the flat map being carved.
type tileBuffer struct {
	rows, cols int
	tiles      []world.TileID
}

func (b *tileBuffer) at(x, y int) world.TileID {
	return b.tiles[y*b.cols+x]
}

func (b *tileBuffer) set(x, y int, id world.TileID) {
	b.tiles[y*b.cols+x] = id
}

// Generate creates a rows x cols map of rooms joined by corridors, walled
// on every side. The same rng seed always gives the same map.
func (g *BSPGenerator) Generate(rows, cols int, rng *rand.Rand) (Layout, error) {
	if rows < MinSize || cols < MinSize {
		return Layout{}, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, cols, rows, MinSize, MinSize)
	}

	buf := &tileBuffer{rows: rows, cols: cols, tiles: make([]world.TileID, rows*cols)}
	for i := range buf.tiles {
		buf.tiles[i] = WallTile
	}

	// Create BSP tree (leaving 1 cell border for perimeter walls)
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cols - 2,
		height: rows - 2,
	}

	splitBSP(root, minNodeSize, rng)
	createRooms(root, rng)
	carveRooms(buf, root)
	connectRooms(buf, root, rng)

	// Start in a random room
	rooms := collectRooms(root)
	startX, startY := rooms[rng.Intn(len(rooms))].center()

	return Layout{
		Grid:   world.NewGrid(rows, cols, buf.tiles),
		StartX: startX,
		StartY: startY,
	}, nil
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false // Split vertically
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true // Split horizontally
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	// Recursively split children
	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// createRooms creates rooms in leaf nodes
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		// Not a leaf node, recurse
		if node.left != nil {
			createRooms(node.left, rng)
		}
		if node.right != nil {
			createRooms(node.right, rng)
		}
		return
	}

	// Leaf node - create a room
	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	roomX := node.x + rng.Intn(node.width-roomWidth)
	roomY := node.y + rng.Intn(node.height-roomHeight)

	node.room = &bspRoom{x: roomX, y: roomY, width: roomWidth, height: roomHeight}
}

// carveRooms fills every room with floor
func carveRooms(buf *tileBuffer, node *bspNode) {
	if node.room != nil {
		for y := node.room.y; y < node.room.y+node.room.height; y++ {
			for x := node.room.x; x < node.room.x+node.room.width; x++ {
				buf.set(x, y, FloorTile)
			}
		}
	}

	if node.left != nil {
		carveRooms(buf, node.left)
	}
	if node.right != nil {
		carveRooms(buf, node.right)
	}
}

// connectRooms connects rooms with corridors
func connectRooms(buf *tileBuffer, node *bspNode, rng *rand.Rand) {
	if node.left == nil || node.right == nil {
		return
	}

	// Get a room from each subtree
	leftRoom := getRoom(node.left, rng)
	rightRoom := getRoom(node.right, rng)

	if leftRoom != nil && rightRoom != nil {
		lx, ly := leftRoom.center()
		rx, ry := rightRoom.center()

		// L-shaped corridor
		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(buf, ly, lx, rx)
			carveCorridorVertical(buf, rx, ly, ry)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(buf, lx, ly, ry)
			carveCorridorHorizontal(buf, ry, lx, rx)
		}
	}

	// Recursively connect subtrees
	connectRooms(buf, node.left, rng)
	connectRooms(buf, node.right, rng)
}

// carveCorridorHorizontal carves a horizontal corridor along row y
func carveCorridorHorizontal(buf *tileBuffer, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		// Don't overwrite room floor
		if buf.at(x, y) == WallTile {
			buf.set(x, y, CorridorTile)
		}
	}
}

// carveCorridorVertical carves a vertical corridor along column x
func carveCorridorVertical(buf *tileBuffer, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		if buf.at(x, y) == WallTile {
			buf.set(x, y, CorridorTile)
		}
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(node *bspNode, rng *rand.Rand) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(node.left, rng)
	}
	if node.right != nil {
		rightRoom = getRoom(node.right, rng)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}

	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}

	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
