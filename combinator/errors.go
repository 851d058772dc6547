package combinator

import (
	"errors"
)

var (
	// ErrNoMatch reports that a parser did not match at the cursor. It is a
	// control-flow signal: Choice, Optional and Many recover from it locally.
	ErrNoMatch = errors.New("no match")

	// ErrTrailingInput reports that Parse matched a prefix of the input but
	// unconsumed text remained.
	ErrTrailingInput = errors.New("trailing input")
)
