package tablegen

import (
	"fmt"
	"iter"
)

// Integer is the constraint for table index ranges.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// For invokes f once per value in [begin, end), ascending.
// Panics if end < begin.
func For[T Integer](begin, end T, f func(T)) {
	if end < begin {
		panic(fmt.Sprintf("tablegen: inverted range [%v, %v)", begin, end))
	}
	for i := begin; i < end; i++ {
		f(i)
	}
}

// Range returns [begin, end) as an iterator, for range-over-func call
// sites. Panics if end < begin.
func Range[T Integer](begin, end T) iter.Seq[T] {
	if end < begin {
		panic(fmt.Sprintf("tablegen: inverted range [%v, %v)", begin, end))
	}
	return func(yield func(T) bool) {
		for i := begin; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Table allocates a size-entry slice and fills every slot from f.
func Table[E any](size int, f func(int) E) []E {
	table := make([]E, size)
	for i := range table {
		table[i] = f(i)
	}
	return table
}
