package board

import "errors"

// Sentinel errors. Use errors.Is to check for them.
var (
	// ErrInvalidPosition indicates malformed algebraic notation.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrOffBoard indicates a piece outside columns a-h or rows 1-8.
	ErrOffBoard = errors.New("piece off board")

	// ErrDuplicatePosition indicates two pieces on the same square.
	ErrDuplicatePosition = errors.New("duplicate position")

	// ErrInvalidPlacement indicates a malformed FEN piece placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrUnknownName indicates an unrecognized color or piece type name.
	ErrUnknownName = errors.New("unknown name")
)
