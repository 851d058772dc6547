package combinator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input is a read-only cursor over source text. Combinators never mutate an
// Input: a successful parse returns a new cursor and a failed parse hands
// the caller's cursor back untouched.
type Input struct {
	src string
	pos int
}

// NewInput returns a cursor at the beginning of src.
func NewInput(src string) Input {
	return Input{src: src}
}

// Pos returns the byte offset of the cursor.
func (in Input) Pos() int {
	return in.pos
}

// Rest returns the unconsumed portion of the source.
func (in Input) Rest() string {
	return in.src[in.pos:]
}

// Done reports whether the cursor reached the end of the source.
func (in Input) Done() bool {
	return in.pos >= len(in.src)
}

func (in Input) next() (rune, Input, bool) {
	if in.Done() {
		return 0, in, false
	}
	r, w := utf8.DecodeRuneInString(in.src[in.pos:])
	return r, Input{src: in.src, pos: in.pos + w}, true
}

// Parser is a pure function from a cursor to a parse outcome. On success it
// returns the parsed value and the advanced cursor; on failure it returns
// ErrNoMatch together with the cursor it was given. Parsers hold no mutable
// state and may be applied repeatedly and concurrently.
type Parser[T any] func(in Input) (T, Input, error)

// Parse applies p to input and requires it to consume the whole text.
// Leftover input after a successful match is reported as ErrTrailingInput.
func Parse[T any](p Parser[T], input string) (T, error) {
	v, rest, err := p(NewInput(input))
	if err != nil {
		var zero T
		return zero, err
	}
	if !rest.Done() {
		var zero T
		return zero, ErrTrailingInput
	}
	return v, nil
}

// Literal matches s exactly.
func Literal(s string) Parser[string] {
	return func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			return "", in, ErrNoMatch
		}
		return s, Input{src: in.src, pos: in.pos + len(s)}, nil
	}
}

// CharMatching consumes a single character satisfying pred. It fails cleanly
// at end of input.
func CharMatching(pred func(rune) bool) Parser[rune] {
	return func(in Input) (rune, Input, error) {
		r, rest, ok := in.next()
		if !ok || !pred(r) {
			return 0, in, ErrNoMatch
		}
		return r, rest, nil
	}
}

// Char consumes the single character c.
func Char(c rune) Parser[rune] {
	return CharMatching(func(r rune) bool {
		return r == c
	})
}

// AnyChar consumes exactly one character of any kind.
func AnyChar() Parser[rune] {
	return CharMatching(func(rune) bool {
		return true
	})
}

// OneOf consumes one character contained in set.
func OneOf(set string) Parser[rune] {
	return CharMatching(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// Range consumes one character between lo and hi, inclusive.
func Range(lo, hi rune) Parser[rune] {
	return CharMatching(func(r rune) bool {
		return lo <= r && r <= hi
	})
}

// Pair holds the two results of a Seq.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq applies first and then second, pairing both results. If either side
// fails the whole sequence fails at the original cursor: a failed sequence
// never leaks partial consumption.
func Seq[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) (Pair[A, B], Input, error) {
		a, afterA, err := first(in)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		b, afterB, err := second(afterA)
		if err != nil {
			return Pair[A, B]{}, in, err
		}
		return Pair[A, B]{First: a, Second: b}, afterB, nil
	}
}

// Left sequences first and second, keeping first's value.
func Left[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Seq(first, second), func(p Pair[A, B]) A {
		return p.First
	})
}

// Right sequences first and second, keeping second's value.
func Right[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Seq(first, second), func(p Pair[A, B]) B {
		return p.Second
	})
}

// Choice tries each parser in order from the same cursor and commits to the
// first one that matches. It fails only if all alternatives fail.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		for _, p := range parsers {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
		}
		var zero T
		return zero, in, ErrNoMatch
	}
}

// Many applies p from the current cursor until it fails. It always succeeds,
// possibly with zero matches. A body that matches without consuming input
// cannot make progress; that is a bug in the grammar definition and panics
// rather than looping forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		parsed := []T{}
		cur := in
		for {
			v, rest, err := p(cur)
			if err != nil {
				return parsed, cur, nil
			}
			if rest.pos == cur.pos {
				panic("combinator: Many applied to a parser that consumes no input")
			}
			parsed = append(parsed, v)
			cur = rest
		}
	}
}

// Many1 is Many requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many(p)
	return func(in Input) ([]T, Input, error) {
		parsed, rest, _ := many(in)
		if len(parsed) == 0 {
			return nil, in, ErrNoMatch
		}
		return parsed, rest, nil
	}
}

// Maybe is the result of an Optional parser.
type Maybe[T any] struct {
	Value T
	Set   bool
}

// Optional always succeeds, recording whether p matched. On failure the
// cursor is left where it was.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(in Input) (Maybe[T], Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return Maybe[T]{}, in, nil
		}
		return Maybe[T]{Value: v, Set: true}, rest, nil
	}
}

// Map applies the pure function f to p's value, leaving consumption and
// success untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, Input, error) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// Delimited matches open, inner and close in sequence and keeps inner's
// value only.
func Delimited[O, T, C any](open Parser[O], inner Parser[T], close Parser[C]) Parser[T] {
	return Left(Right(open, inner), close)
}

// SeparatedList matches zero or more items, each pair of neighbors separated
// by exactly one sep match. No trailing separator is consumed.
func SeparatedList[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	head := Seq(item, Many(Right(sep, item)))
	return func(in Input) ([]T, Input, error) {
		p, rest, err := head(in)
		if err != nil {
			return []T{}, in, nil
		}
		return append([]T{p.First}, p.Second...), rest, nil
	}
}

// Until applies p repeatedly until stop matches at the cursor, leaving
// stop's match unconsumed. Starting at end of input is a failure, as is
// running out of input before stop matches.
func Until[T, S any](p Parser[T], stop Parser[S]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		if in.Done() {
			return nil, in, ErrNoMatch
		}
		parsed := []T{}
		cur := in
		for {
			if _, _, err := stop(cur); err == nil {
				return parsed, cur, nil
			}
			v, rest, err := p(cur)
			if err != nil {
				return nil, in, err
			}
			parsed = append(parsed, v)
			cur = rest
		}
	}
}

// Whitespace consumes a run of zero or more whitespace characters. It never
// fails.
func Whitespace() Parser[string] {
	ws := Many(CharMatching(unicode.IsSpace))
	return Map(ws, func(rs []rune) string {
		return string(rs)
	})
}

// Lazy defers the construction of a parser until it runs, breaking the cycle
// in self-referential grammar definitions.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		return build()(in)
	}
}
