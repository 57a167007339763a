// Package checker provides small generic predicates and the combinators
// that apply them across a collection.
package checker

import "golang.org/x/exp/constraints"

// Number is any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsPositive reports whether v > 0.
func IsPositive[T Number](v T) bool {
	return v > 0
}

// IsNegative reports whether v < 0.
func IsNegative[T Number](v T) bool {
	return v < 0
}

// IsEqual reports whether v == to.
func IsEqual[T comparable](v, to T) bool {
	return v == to
}

// CheckAll reports whether pred holds for every value. An empty collection
// is true.
func CheckAll[T any](values []T, pred func(T) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

// CheckAny reports whether pred holds for at least one value. An empty
// collection is false.
func CheckAny[T any](values []T, pred func(T) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}

// CheckAllWith is CheckAll for predicates taking one extra fixed argument,
// e.g. CheckAllWith(xs, IsEqual[int], 3).
func CheckAllWith[T, A any](values []T, pred func(T, A) bool, arg A) bool {
	return CheckAll(values, func(v T) bool { return pred(v, arg) })
}

// CheckAnyWith is CheckAny for predicates taking one extra fixed argument.
func CheckAnyWith[T, A any](values []T, pred func(T, A) bool, arg A) bool {
	return CheckAny(values, func(v T) bool { return pred(v, arg) })
}
