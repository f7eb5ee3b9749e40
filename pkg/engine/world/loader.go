package world

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MapFile is the on-disk JSON form of a map. Tiles are indexed [y][x].
type MapFile struct {
	Name  string  `json:"name"`
	Tiles [][]int `json:"tiles"`
}

// LoadGrid loads a map from a JSON file
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeGrid(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load map file %s: %w", path, err)
	}
	return g, nil
}

// DecodeGrid parses a JSON map from r
func DecodeGrid(r io.Reader) (*Grid, error) {
	var mf MapFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMap, err)
	}
	return NewGridFromRows(mf.Tiles)
}
