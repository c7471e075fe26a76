package gutter

// Forward cursors decouple the bulk range operations from any particular
// container: a bulk write pulls one value per leaf from a Source, a bulk read
// pushes one value per leaf into a Sink, always in logical leaf order.

// Source yields the next value on each call. A bulk write over k leaves calls
// it exactly k times.
type Source[T any] func() T

// Sink consumes one value on each call. A bulk read over k leaves calls it
// exactly k times.
type Sink[T any] func(v T)

// SliceSource returns a Source reading successive elements of values. The
// source panics if advanced past the end of the slice.
func SliceSource[T any](values []T) Source[T] {
	next := 0
	return func() T {
		v := values[next]
		next++
		return v
	}
}

// SliceSink returns a Sink appending each received value to *dst.
func SliceSink[T any](dst *[]T) Sink[T] {
	return func(v T) {
		*dst = append(*dst, v)
	}
}
