package explicon

import (
	"cmp"
	"slices"
)

// Predicate reports whether a resolved value is acceptable.
// Any func(T) bool can be passed to the validating resolvers; these helpers cover
// the usual required/min/max/oneof checks.
type Predicate[T any] func(T) bool

// NonZero rejects T's zero value.
func NonZero[T comparable]() Predicate[T] {
	return func(v T) bool {
		var zero T
		return v != zero
	}
}

// Min accepts values >= lo.
func Min[T cmp.Ordered](lo T) Predicate[T] {
	return func(v T) bool { return cmp.Compare(v, lo) >= 0 }
}

// Max accepts values <= hi.
func Max[T cmp.Ordered](hi T) Predicate[T] {
	return func(v T) bool { return cmp.Compare(v, hi) <= 0 }
}

// Between accepts values in the closed range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Predicate[T] {
	return All(Min(lo), Max(hi))
}

// LenBetween accepts strings or byte slices whose length is in [lo, hi].
func LenBetween[T ~string | ~[]byte](lo, hi int) Predicate[T] {
	return func(v T) bool { return len(v) >= lo && len(v) <= hi }
}

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed ...T) Predicate[T] {
	return func(v T) bool { return slices.Contains(allowed, v) }
}

// All accepts a value only if every predicate does. No predicates accepts everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}
