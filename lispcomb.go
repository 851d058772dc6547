package lispcomb

import (
	"github.com/pkg/errors"

	"github.com/xiam/lisp-comb/lisp"
)

// Parse reads a single S-expression object from in. It fails if in holds
// anything other than one object surrounded by optional whitespace.
func Parse(in []byte) (*lisp.Object, error) {
	obj, err := lisp.Parse(in)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return obj, nil
}
