package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/common"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// Style holds everything configurable about how the board is drawn
type Style struct {
	Tile       color.RGBA
	Hover      color.RGBA
	Unit       color.RGBA
	Background color.RGBA
	Label      color.RGBA

	UnitRadius  float64
	StrokeWidth float64
	ShowHover   bool
}

// DefaultStyle matches the default configuration
func DefaultStyle() Style {
	return Style{
		Tile:        common.TileColor,
		Hover:       common.HoverColor,
		Unit:        common.UnitColor,
		Background:  common.BackgroundColor,
		Label:       common.LabelColor,
		UnitRadius:  10,
		StrokeWidth: 1,
		ShowHover:   true,
	}
}

// StyleFromConfig builds a style from the loaded settings
func StyleFromConfig(c *config.Config) Style {
	return Style{
		Tile:        common.RGB(c.Colors.Tile),
		Hover:       common.RGB(c.Colors.Hover),
		Unit:        common.RGB(c.Colors.Unit),
		Background:  common.RGB(c.Colors.Background),
		Label:       common.RGB(c.Colors.Label),
		UnitRadius:  common.ClampFloat(c.UI.Hex.UnitRadius, 1, c.UI.Hex.Size),
		StrokeWidth: c.UI.Hex.StrokeWidth,
		ShowHover:   c.Development.ShowHover,
	}
}

// Scene is one frame's worth of state to draw
type Scene struct {
	Layout       core.Layout
	Tiles        []game.TileCenter
	Units        []game.UnitView
	Hover        core.HexCoord
	HoverOnBoard bool
	ShowLabels   bool
}

// HexBoardRenderer draws the hex grid, the hover highlight and the units
type HexBoardRenderer struct {
	style       Style
	defaultFont font.Face
	fillImg     *ebiten.Image
	fillVs      []ebiten.Vertex
	fillIs      []uint16
}

// NewHexBoardRenderer returns a renderer ready to use.
func NewHexBoardRenderer(style Style, f font.Face) *HexBoardRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &HexBoardRenderer{
		style:       style,
		defaultFont: f,
		fillImg:     fillImg,
	}
}

// SetStyle swaps the drawing style, e.g. after a config reload
func (r *HexBoardRenderer) SetStyle(style Style) {
	r.style = style
}

// Style returns the current drawing style
func (r *HexBoardRenderer) Style() Style {
	return r.style
}

// Draw renders the scene on the supplied Ebiten screen.
func (r *HexBoardRenderer) Draw(screen *ebiten.Image, s Scene) {
	screen.Fill(r.style.Background)

	if r.style.ShowHover && s.HoverOnBoard {
		r.fillHex(screen, s.Layout, s.Hover, common.WithAlpha(r.style.Hover, 48))
	}

	for _, t := range s.Tiles {
		r.strokeHex(screen, s.Layout, t.Hex, r.style.Tile, r.style.StrokeWidth)
	}
	if r.style.ShowHover && s.HoverOnBoard {
		r.strokeHex(screen, s.Layout, s.Hover, r.style.Hover, r.style.StrokeWidth*2)
	}

	if s.ShowLabels && r.defaultFont != nil {
		for _, t := range s.Tiles {
			r.drawLabel(screen, t)
		}
	}

	for _, u := range s.Units {
		vector.DrawFilledCircle(screen,
			float32(u.Center.X), float32(u.Center.Y),
			float32(r.style.UnitRadius), r.style.Unit, true)
	}
}

// strokeHex draws the six edges of h
func (r *HexBoardRenderer) strokeHex(screen *ebiten.Image, l core.Layout, h core.HexCoord, c color.Color, width float64) {
	corners := l.Corners(h)
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(width), c, true)
	}
}

// fillHex fills the polygon of h with a translucent color
func (r *HexBoardRenderer) fillHex(screen *ebiten.Image, l core.Layout, h core.HexCoord, c color.RGBA) {
	corners := l.Corners(h)

	var path vector.Path
	path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, p := range corners[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 0xff
		r.fillVs[i].ColorG = float32(c.G) / 0xff
		r.fillVs[i].ColorB = float32(c.B) / 0xff
		r.fillVs[i].ColorA = float32(c.A) / 0xff
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawLabel centers "q,r" on the tile
func (r *HexBoardRenderer) drawLabel(screen *ebiten.Image, t game.TileCenter) {
	label := strconv.Itoa(t.Hex.Q) + "," + strconv.Itoa(t.Hex.R)

	b := text.BoundString(r.defaultFont, label)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y

	x := int(t.Center.X) - textW/2
	y := int(t.Center.Y) + textH/2
	text.Draw(screen, label, r.defaultFont, x, y, r.style.Label)
}
