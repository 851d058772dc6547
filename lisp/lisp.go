package lisp

import (
	"unicode"

	"github.com/pkg/errors"

	"github.com/xiam/lisp-comb/combinator"
)

// isIdentRune reports whether r may appear in a bare identifier. Whitespace,
// parentheses and double quotes terminate an identifier.
func isIdentRune(r rune) bool {
	return !unicode.IsSpace(r) && r != '(' && r != ')' && r != '"'
}

// Ident returns a parser matching a maximal non-empty run of identifier
// characters.
func Ident() combinator.Parser[*Object] {
	chars := combinator.Many1(combinator.CharMatching(isIdentRune))
	return combinator.Map(chars, func(rs []rune) *Object {
		return NewIdent(string(rs))
	})
}

// StringLiteral returns a parser matching a double-quoted string. No escape
// sequences are recognized. An unterminated string fails as a whole; it
// never yields a partial string value.
func StringLiteral() combinator.Parser[*Object] {
	quote := combinator.Literal(`"`)
	body := combinator.Many(combinator.CharMatching(func(r rune) bool {
		return r != '"'
	}))
	inner := combinator.Delimited(quote, body, quote)
	return combinator.Map(inner, func(rs []rune) *Object {
		return NewString(string(rs))
	})
}

// List returns a parser matching a parenthesized, whitespace-separated
// sequence of objects. The empty list "()" is valid.
func List() combinator.Parser[*Object] {
	open := combinator.Left(combinator.Literal("("), combinator.Whitespace())
	closing := combinator.Right(combinator.Whitespace(), combinator.Literal(")"))

	items := combinator.SeparatedList(combinator.Lazy(LispObject), combinator.Whitespace())

	inner := combinator.Delimited(open, items, closing)
	return combinator.Map(inner, func(children []*Object) *Object {
		return NewList(children...)
	})
}

// LispObject returns the full grammar: a list, a string literal or a bare
// identifier, tried in that order. Structural tokens come first so that an
// identifier never swallows "(" or a quote. The returned parser is a plain
// value and may be composed into larger grammars.
func LispObject() combinator.Parser[*Object] {
	return combinator.Choice(List(), StringLiteral(), Ident())
}

// Parse reads a single object from in, ignoring surrounding whitespace. Any
// unconsumed text after the object makes the whole parse fail.
//
// Parsing recurses once per nesting level, so stack use grows with the depth
// of the parenthesized structure. Callers handling untrusted input should
// bound its nesting depth themselves.
func Parse(in []byte) (*Object, error) {
	p := combinator.Delimited(combinator.Whitespace(), LispObject(), combinator.Whitespace())

	obj, err := combinator.Parse(p, string(in))
	if err != nil {
		return nil, errors.Wrap(err, "lisp")
	}
	return obj, nil
}
