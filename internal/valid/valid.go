// Package valid provides an applicative result type that carries either a
// value or every error found while computing it.
//
// Independent computations are combined with Map2, Traverse, TraverseMap or a
// Collector; all of them keep going after a failure and merge the causes.
// AndThen is the only combinator that stops, and only for the computation that
// depends on the failed value.
package valid

import (
	"sort"

	language "github.com/hanpama/graphcfg/internal/language"
)

// Valid holds a value of type T or a non-empty list of causes.
type Valid[T any] struct {
	value  T
	causes ValidationError
}

func Succeed[T any](value T) Valid[T] {
	return Valid[T]{value: value}
}

func Fail[T any](message string) Valid[T] {
	return Valid[T]{causes: ValidationError{{Message: message}}}
}

// FailAt fails with a cause located at pos.
func FailAt[T any](message string, pos *language.Position) Valid[T] {
	return Valid[T]{causes: ValidationError{causeAt(message, pos)}}
}

// FromCauses succeeds with value when causes is empty and fails otherwise.
func FromCauses[T any](value T, causes ValidationError) Valid[T] {
	if len(causes) > 0 {
		var zero T
		return Valid[T]{value: zero, causes: causes}
	}
	return Succeed(value)
}

func (v Valid[T]) IsSucceed() bool { return len(v.causes) == 0 }

// Causes returns the causes of a failed value, or nil.
func (v Valid[T]) Causes() ValidationError { return v.causes }

// Trace prepends label to the trace of every cause held by v.
func (v Valid[T]) Trace(label string) Valid[T] {
	if v.IsSucceed() {
		return v
	}
	causes := make(ValidationError, len(v.causes))
	for i, c := range v.causes {
		causes[i] = c.traced(label)
	}
	return Valid[T]{causes: causes}
}

// Unwrap converts v into a value and an error of type ValidationError.
func (v Valid[T]) Unwrap() (T, error) {
	if !v.IsSucceed() {
		var zero T
		return zero, v.causes
	}
	return v.value, nil
}

func Map[A, B any](v Valid[A], f func(A) B) Valid[B] {
	if !v.IsSucceed() {
		return Valid[B]{causes: v.causes}
	}
	return Succeed(f(v.value))
}

// AndThen runs f on the value of v. When v failed, f is not called.
func AndThen[A, B any](v Valid[A], f func(A) Valid[B]) Valid[B] {
	if !v.IsSucceed() {
		return Valid[B]{causes: v.causes}
	}
	return f(v.value)
}

// Map2 combines two independent values. Causes of both are reported.
func Map2[A, B, C any](a Valid[A], b Valid[B], f func(A, B) C) Valid[C] {
	var causes ValidationError
	causes = append(causes, a.causes...)
	causes = append(causes, b.causes...)
	if len(causes) > 0 {
		return Valid[C]{causes: causes}
	}
	return Succeed(f(a.value, b.value))
}

// Traverse applies f to every item and collects the results in order.
func Traverse[A, B any](items []A, f func(A) Valid[B]) Valid[[]B] {
	c := &Collector{}
	out := make([]B, 0, len(items))
	for _, item := range items {
		out = append(out, Collect(c, f(item)))
	}
	return Result(c, out)
}

// TraverseMap lowers every entry of m in key order, tracing each entry's
// causes under its key.
func TraverseMap[A, B any](m map[string]A, f func(string, A) Valid[B]) Valid[map[string]B] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := &Collector{}
	out := make(map[string]B, len(m))
	for _, k := range keys {
		out[k] = Collect(c, f(k, m[k]).Trace(k))
	}
	return Result(c, out)
}

// Collector accumulates causes of independent computations.
//
//	c := &valid.Collector{}
//	a := valid.Collect(c, lowerA())
//	b := valid.Collect(c, lowerB())
//	return valid.Result(c, build(a, b))
type Collector struct {
	causes ValidationError
}

// Collect records the causes of v and returns its value, which is the zero
// value of T when v failed.
func Collect[T any](c *Collector, v Valid[T]) T {
	c.causes = append(c.causes, v.causes...)
	return v.value
}

func (c *Collector) Len() int { return len(c.causes) }

// Result succeeds with value when nothing collected so far failed.
func Result[T any](c *Collector, value T) Valid[T] {
	return FromCauses(value, c.causes)
}
