package core

import "errors"

var (
	ErrUnknownShape     = errors.New("unknown board shape")
	ErrInvalidRadius    = errors.New("board radius must be non-negative")
	ErrEmptyBoard       = errors.New("board has no tiles")
	ErrInvalidHexSize   = errors.New("hex size must be positive")
	ErrStartOffBoard    = errors.New("unit start position is not on the board")
	ErrInvalidLayoutDoc = errors.New("invalid board layout document")
	ErrGameEnded        = errors.New("game has ended")
)
