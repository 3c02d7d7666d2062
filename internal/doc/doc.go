// Package doc provides an accumulator for assembling text or binary output
// from many small fragments without the quadratic cost of naive appending.
//
// A Doc is built purely through combinators, concatenates in O(1), and is
// flattened once via Export in O(n) of the total fragment size. It carries no
// format-specific logic: callers (the render package) decide structure,
// quoting and escaping.
package doc

import "strings"

// Fragment constrains the payload types a Doc can accumulate.
type Fragment interface {
	~string | ~[]byte
}

// Doc is an immutable ordered sequence of fragments. The zero value is the
// empty document.
//
// Internally a Doc is a difference list: a closure that feeds its fragments,
// in order, to a continuation. Concatenation composes closures instead of
// copying data, so it costs O(1) regardless of operand size; the actual join
// is deferred to Export.
type Doc[S Fragment] struct {
	walk func(emit func(S))
}

// Empty returns the empty document, the identity for concatenation.
func Empty[S Fragment]() Doc[S] {
	return Doc[S]{}
}

// Literal wraps a single fragment. The fragment is held by reference, not
// copied; callers passing byte slices must not mutate them afterwards.
// An empty fragment yields the empty document.
func Literal[S Fragment](s S) Doc[S] {
	if len(s) == 0 {
		return Doc[S]{}
	}
	return Doc[S]{walk: func(emit func(S)) {
		emit(s)
	}}
}

// Text wraps a raw string literal as a document of any fragment type.
func Text[S Fragment](s string) Doc[S] {
	return Literal(S(s))
}

// Append returns the ordered concatenation of d and the given documents.
// Concatenation is associative with Empty as two-sided identity, and runs in
// O(1) per operand.
func (d Doc[S]) Append(others ...Doc[S]) Doc[S] {
	out := d
	for _, o := range others {
		out = cat(out, o)
	}
	return out
}

// Concat concatenates documents in order. Concat() is the empty document.
func Concat[S Fragment](docs ...Doc[S]) Doc[S] {
	var out Doc[S]
	for _, d := range docs {
		out = cat(out, d)
	}
	return out
}

func cat[S Fragment](a, b Doc[S]) Doc[S] {
	if a.walk == nil {
		return b
	}
	if b.walk == nil {
		return a
	}
	return Doc[S]{walk: func(emit func(S)) {
		a.walk(emit)
		b.walk(emit)
	}}
}

// Export flattens the document into a single value, concatenating every
// fragment in construction order. Export is pure: it never mutates d and
// repeated calls return equal results. The result is built in one allocation
// sized from a counting pass.
func (d Doc[S]) Export() S {
	if d.walk == nil {
		var zero S
		return zero
	}
	var n int
	d.walk(func(s S) {
		n += len(s)
	})
	out := make([]byte, 0, n)
	d.walk(func(s S) {
		out = append(out, s...)
	})
	return S(out)
}

// NewLine is a document holding a single line terminator.
func NewLine[S Fragment]() Doc[S] {
	return Text[S]("\n")
}

// Brackets wraps d in square brackets.
func Brackets[S Fragment](d Doc[S]) Doc[S] {
	return Concat(Text[S]("["), d, Text[S]("]"))
}

// DoubleQuotes wraps d in double-quote characters. No escaping is applied to
// the content.
func DoubleQuotes[S Fragment](d Doc[S]) Doc[S] {
	return Concat(Text[S](`"`), d, Text[S](`"`))
}

// Indent prepends n space characters to d. A count of zero or less adds no
// padding and returns d unchanged.
func Indent[S Fragment](n int, d Doc[S]) Doc[S] {
	if n <= 0 {
		return d
	}
	return cat(Text[S](strings.Repeat(" ", n)), d)
}

// Unlines terminates each document with a newline and concatenates the
// results in order. An empty input yields the empty document.
func Unlines[S Fragment](docs []Doc[S]) Doc[S] {
	var out Doc[S]
	for _, d := range docs {
		out = Concat(out, d, NewLine[S]())
	}
	return out
}
