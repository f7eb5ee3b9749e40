package world

// Vec2 is a continuous position in world pixels.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// GridToWorld converts a grid coordinate to the world position of its top-left corner.
func GridToWorld(gridX, gridY int, tileSize float64) Vec2 {
	return Vec2{X: float64(gridX) * tileSize, Y: float64(gridY) * tileSize}
}
