package gutter

import "golang.org/x/exp/constraints"

// Op supplies the binary operation a structure folds and applies, together
// with its identity element.
//
// Combine must be associative and commutative, and Identity must be a two
// sided identity for it: Combine(Identity(), x) == Combine(x, Identity()) ==
// x for every x. Neither property is checkable at runtime; supplying an op
// that violates them silently yields wrong aggregates rather than an error.
type Op[T any] interface {
	Combine(a, b T) T
	Identity() T
}

// Number constrains the element types of the arithmetic ops.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum folds by addition, identity 0.
type Sum[T Number] struct{}

func (Sum[T]) Combine(a, b T) T { return a + b }
func (Sum[T]) Identity() T      { return 0 }

// Product folds by multiplication, identity 1.
type Product[T Number] struct{}

func (Product[T]) Combine(a, b T) T { return a * b }
func (Product[T]) Identity() T      { return 1 }

// Min folds to the smallest value. Go offers no generic way to name the
// greatest value of an ordered type, so the caller supplies the identity,
// typically the maximum representable value of T (e.g. math.MaxInt64).
func Min[T constraints.Ordered](identity T) Op[T] {
	return minOp[T]{identity}
}

type minOp[T constraints.Ordered] struct{ identity T }

func (o minOp[T]) Combine(a, b T) T {
	if b < a {
		return b
	}
	return a
}
func (o minOp[T]) Identity() T { return o.identity }

// Max folds to the largest value. The caller supplies the identity, typically
// the minimum representable value of T (e.g. math.MinInt64).
func Max[T constraints.Ordered](identity T) Op[T] {
	return maxOp[T]{identity}
}

type maxOp[T constraints.Ordered] struct{ identity T }

func (o maxOp[T]) Combine(a, b T) T {
	if b > a {
		return b
	}
	return a
}
func (o maxOp[T]) Identity() T { return o.identity }

// GCD folds by greatest common divisor, identity 0 (gcd(0, x) == x).
type GCD[T constraints.Unsigned] struct{}

func (GCD[T]) Combine(a, b T) T { return gcd(a, b) }
func (GCD[T]) Identity() T      { return 0 }

// LCM folds by least common multiple, identity 1. Combine overflows silently
// for values whose lcm exceeds T, as the underlying multiplication does.
type LCM[T constraints.Unsigned] struct{}

func (LCM[T]) Combine(a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
func (LCM[T]) Identity() T { return 1 }

func gcd[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// OpFunc adapts an explicit {combine, identity} pair into an Op, for
// operations over element types the built-in ops do not cover.
func OpFunc[T any](combine func(a, b T) T, identity T) Op[T] {
	return funcOp[T]{combine, identity}
}

type funcOp[T any] struct {
	combine  func(a, b T) T
	identity T
}

func (o funcOp[T]) Combine(a, b T) T { return o.combine(a, b) }
func (o funcOp[T]) Identity() T      { return o.identity }
