package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui/input"
)

// EbitenPointer reads the mouse and keyboard through ebiten
type EbitenPointer struct{}

var keyBindings = map[input.Key]ebiten.Key{
	input.KeyPause:  ebiten.KeySpace,
	input.KeyLabels: ebiten.KeyC,
	input.KeyQuit:   ebiten.KeyEscape,
}

func (EbitenPointer) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenPointer) LeftJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenPointer) KeyJustPressed(k input.Key) bool {
	key, ok := keyBindings[k]
	return ok && inpututil.IsKeyJustPressed(key)
}
