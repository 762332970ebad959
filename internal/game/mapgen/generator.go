package mapgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// Board shapes understood by the generator
const (
	// ShapeParallelogram is every (q, r) with |q|, |r| <= radius. It is the
	// default and draws as a rhombus on screen.
	ShapeParallelogram = "parallelogram"
	// ShapeHexagon is every tile within hex distance radius of the origin
	ShapeHexagon = "hexagon"
	// ShapeFile loads an explicit tile list from a YAML layout file
	ShapeFile = "file"
)

// BoardConfig holds configuration for board generation
type BoardConfig struct {
	Shape  string
	Radius int
	File   string
}

// DefaultBoardConfig returns the 5x5 parallelogram around the origin
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Shape:  ShapeParallelogram,
		Radius: 2,
	}
}

// Generator builds the set of available tiles
type Generator struct {
	config BoardConfig
}

// NewGenerator creates a new board generator
func NewGenerator(config BoardConfig) *Generator {
	return &Generator{config: config}
}

// GenerateBoard creates the board described by the generator's config
func (g *Generator) GenerateBoard() (*core.Board, error) {
	switch g.config.Shape {
	case ShapeParallelogram, "":
		if g.config.Radius < 0 {
			return nil, fmt.Errorf("%s board: %w", ShapeParallelogram, core.ErrInvalidRadius)
		}
		return Parallelogram(g.config.Radius), nil
	case ShapeHexagon:
		if g.config.Radius < 0 {
			return nil, fmt.Errorf("%s board: %w", ShapeHexagon, core.ErrInvalidRadius)
		}
		return Hexagon(g.config.Radius), nil
	case ShapeFile:
		return LoadLayoutFile(g.config.File)
	default:
		return nil, fmt.Errorf("%q: %w", g.config.Shape, core.ErrUnknownShape)
	}
}

// Parallelogram returns every (q, r) with q, r in [-radius, radius]
func Parallelogram(radius int) *core.Board {
	b := core.NewBoard()
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			b.Add(core.HexCoord{Q: q, R: r})
		}
	}
	return b
}

// Hexagon returns every tile within hex distance radius of the origin
func Hexagon(radius int) *core.Board {
	b := core.NewBoard()
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			b.Add(core.HexCoord{Q: q, R: r})
		}
	}
	return b
}

// LayoutTile is a single tile entry in a layout document
type LayoutTile struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// LayoutDoc is the YAML board layout format:
//
//	tiles:
//	  - {q: 0, r: 0}
//	  - {q: 1, r: -1}
type LayoutDoc struct {
	Tiles []LayoutTile `yaml:"tiles"`
}

// LoadLayoutFile reads a YAML layout document from disk
func LoadLayoutFile(path string) (*core.Board, error) {
	if path == "" {
		return nil, fmt.Errorf("layout file path is empty: %w", core.ErrInvalidLayoutDoc)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	b, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return b, nil
}

// ParseLayout decodes a YAML layout document into a board
func ParseLayout(data []byte) (*core.Board, error) {
	var doc LayoutDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidLayoutDoc, err)
	}
	if len(doc.Tiles) == 0 {
		return nil, core.ErrEmptyBoard
	}

	b := core.NewBoard()
	for _, t := range doc.Tiles {
		b.Add(core.HexCoord{Q: t.Q, R: t.R})
	}
	return b, nil
}

// MarshalLayout encodes a board as a YAML layout document
func MarshalLayout(b *core.Board) ([]byte, error) {
	tiles := b.Tiles()
	doc := LayoutDoc{Tiles: make([]LayoutTile, len(tiles))}
	for i, t := range tiles {
		doc.Tiles[i] = LayoutTile{Q: t.Q, R: t.R}
	}
	return yaml.Marshal(&doc)
}
