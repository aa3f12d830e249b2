package parser

import "github.com/go-bsl/bslint/internal/token"

// Error is a single parse-time diagnostic. Fatal errors abort parsing of
// the enclosing module outright; non-fatal errors are recorded and
// parsing resynchronizes at the next statement boundary.
type Error struct {
	Message string
	Pos     token.Pos
	Fatal   bool
}

func (e Error) Error() string { return e.Message }
