package parse

import "strconv"

// Number is the set of Go types a parse can produce.  Float types select
// [Float] parsing; integer types select [Integer] parsing.
type Number interface {
	float32 | float64 | int | int8 | int16 | int32 | int64
}

// Outcome is either a successfully parsed value or a failure.  A failed
// Outcome holds no value.
type Outcome[T Number] struct {
	value T
	ok    bool
}

// Success returns an Outcome holding v.
func Success[T Number](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Failure returns a failed Outcome.
func Failure[T Number]() Outcome[T] {
	return Outcome[T]{}
}

// Get returns the parsed value and true, or the zero value and false.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OK reports whether the parse succeeded.
func (o Outcome[T]) OK() bool { return o.ok }

// Or returns the parsed value, or def when the parse failed.
func (o Outcome[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// KindOf returns the parse kind used for T.
func KindOf[T Number]() Kind {
	var zero T
	kind, _ := describe(zero)
	return kind
}

// describe maps a target type to its parse kind and bit size.
func describe(v any) (Kind, int) {
	switch v.(type) {
	case float32:
		return Float, 32
	case float64:
		return Float, 64
	case int8:
		return Integer, 8
	case int16:
		return Integer, 16
	case int32:
		return Integer, 32
	case int64:
		return Integer, 64
	default: // int
		return Integer, strconv.IntSize
	}
}

// Parse parses the numeric prefix of input into T.  float32 values are
// rounded once, straight from the decimal digits.  Integer targets fail when
// the integer-part digits overflow T.
func Parse[T Number](input string) Outcome[T] {
	var zero T
	kind, bits := describe(zero)
	tok, ok := Scan(input, kind)
	if !ok {
		return Failure[T]()
	}
	if kind == Float {
		return Success(T(tok.Float(bits)))
	}
	v, ok := tok.Int(bits)
	if !ok {
		return Failure[T]()
	}
	return Success(T(v))
}

// Into parses input into *dst.  dst is written only on success; on failure
// it keeps its previous value.
func Into[T Number](dst *T, input string) bool {
	v, ok := Parse[T](input).Get()
	if ok {
		*dst = v
	}
	return ok
}
