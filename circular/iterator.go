package circular

// Iterator addresses one element of a List together with a lap count. The
// lap goes up by one each time Next leaves the head and down by one each time
// Prev arrives at it, so the same node can be told apart across laps.
//
// Iterators are values. Erasing an element invalidates every iterator on it;
// using one afterwards panics.
type Iterator[T any] struct {
	list *List[T]
	node int
	lap  int
}

func (it Iterator[T]) Lap() int {
	return it.lap
}

// Next returns the iterator one element forward.
func (it Iterator[T]) Next() Iterator[T] {
	s := it.slot()
	if !it.list.pool.at(s.fwd).occupied {
		panic("iterator links to a freed node")
	}
	if s.isHead {
		it.lap++
	}
	it.node = s.fwd
	return it
}

// Prev returns the iterator one element back.
func (it Iterator[T]) Prev() Iterator[T] {
	s := it.slot()
	prev := it.list.pool.at(s.bwd)
	if !prev.occupied {
		panic("iterator links to a freed node")
	}
	if prev.isHead {
		it.lap--
	}
	it.node = s.bwd
	return it
}

// Advance moves n elements forward, or backward if n is negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Equal reports whether both iterators address the same element on the same
// lap. Iterators of an empty list are all equal.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.list == o.list && it.node == o.node && (it.node < 0 || it.lap == o.lap)
}

func (it Iterator[T]) Value() T {
	return it.slot().value
}

func (it Iterator[T]) Set(v T) {
	it.slot().value = v
}

func (it Iterator[T]) slot() *slot[T] {
	if it.node < 0 {
		panic("iterator of an empty ring")
	}
	s := it.list.pool.at(it.node)
	if !s.occupied {
		panic("iterator on a freed node")
	}
	return s
}
