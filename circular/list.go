// Package circular implements a doubly-linked circular list backed by a slab
// of slots. Elements are addressed by lap-aware iterators: since a ring has no
// natural end, End() is the head node one lap after Begin().
package circular

import (
	"fmt"
	"iter"
	"strings"
)

const noNode = -1

// List is a circular sequence of values with a movable head. Use New to
// create one; a List is not safe for concurrent use.
type List[T any] struct {
	head int
	pool pool[T]
}

// New returns a list holding values in order, with values[0] at the head.
func New[T any](values ...T) *List[T] {
	n := len(values)
	l := &List[T]{head: noNode, pool: newPool[T](n)}
	if n == 0 {
		return l
	}
	for i, v := range values {
		l.pool.slots = append(l.pool.slots, slot[T]{
			fwd:      (i + 1) % n,
			bwd:      (i - 1 + n) % n,
			value:    v,
			occupied: true,
			isHead:   i == 0,
		})
	}
	l.head = 0
	return l
}

func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, node: l.head, lap: 0}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l, node: l.head, lap: 1}
}

func (l *List[T]) Empty() bool {
	return l.head < 0
}

// Size returns the number of elements.
//
// NOTE: This is an O(n) operation.
func (l *List[T]) Size() int {
	n := 0
	for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
		n++
	}
	return n
}

// At returns the element i steps from the head. Negative i walks backwards.
func (l *List[T]) At(i int) T {
	if l.Empty() {
		panic("empty ring")
	}
	return l.Begin().Advance(i).Value()
}

func (l *List[T]) SetAt(i int, v T) {
	if l.Empty() {
		panic("empty ring")
	}
	l.Begin().Advance(i).Set(v)
}

// Insert places values, in order, immediately before pos and returns an
// iterator to the first inserted value. Inserting before Begin() makes the
// first inserted value the new head; inserting before End() appends.
func (l *List[T]) Insert(pos Iterator[T], values ...T) Iterator[T] {
	l.owns(pos)
	if len(values) == 0 {
		return pos
	}
	if l.Empty() {
		return l.fill(values)
	}
	l.live(pos)
	at := l.pool.at(pos.node)
	moveHead := at.isHead && pos.lap == 0

	last := at.bwd
	first := noNode
	for i, v := range values {
		// allocating may grow the slab, so slots are re-fetched by index.
		idx := l.pool.allocate(len(values) - i)
		s := l.pool.at(idx)
		s.value = v
		s.bwd = last
		l.pool.at(last).fwd = idx
		last = idx
		if first == noNode {
			first = idx
		}
	}
	l.pool.at(last).fwd = pos.node
	l.pool.at(pos.node).bwd = last

	if moveHead {
		l.pool.at(pos.node).isHead = false
		l.pool.at(first).isHead = true
		l.head = first
		return l.Begin()
	}
	return pos.Advance(-len(values))
}

func (l *List[T]) fill(values []T) Iterator[T] {
	first := l.pool.allocate(len(values))
	l.pool.at(first).value = values[0]
	last := first
	for i, v := range values[1:] {
		idx := l.pool.allocate(len(values) - 1 - i)
		s := l.pool.at(idx)
		s.value = v
		s.bwd = last
		l.pool.at(last).fwd = idx
		last = idx
	}
	l.pool.at(last).fwd = first
	l.pool.at(first).bwd = last
	l.pool.at(first).isHead = true
	l.head = first
	return l.Begin()
}

// PushBack appends values before End().
func (l *List[T]) PushBack(values ...T) {
	l.Insert(l.End(), values...)
}

// PushFront inserts values before Begin(); values[0] becomes the head.
func (l *List[T]) PushFront(values ...T) {
	l.Insert(l.Begin(), values...)
}

// Erase removes the run [first, last) and returns an iterator to the element
// that followed it, or End() if nothing is left. last may be at most one lap
// ahead of first, which lets a run wrap past the head. If the head is erased,
// the element at last becomes the new head.
func (l *List[T]) Erase(first, last Iterator[T]) Iterator[T] {
	l.owns(first)
	l.owns(last)
	if l.Empty() {
		if first.node != noNode || last.node != noNode {
			panic("erase on an empty ring")
		}
		return l.End()
	}
	if last.lap != first.lap && last.lap != first.lap+1 {
		panic(fmt.Sprintf("erase range spans laps %d to %d", first.lap, last.lap))
	}
	l.live(first)
	l.live(last)
	n := l.span(first, last)

	beforeFirst := l.pool.at(first.node).bwd
	beheaded := false
	cur := first.node
	for ; n > 0; n-- {
		if cur == l.head {
			beheaded = true
		}
		next := l.pool.at(cur).fwd
		l.pool.release(cur)
		cur = next
	}
	// this may link freed slots to each other; they are never walked.
	l.pool.at(last.node).bwd = beforeFirst
	l.pool.at(beforeFirst).fwd = last.node

	end := l.pool.at(last.node)
	if !end.occupied {
		l.head = noNode
		return l.End()
	}
	if beheaded {
		end.isHead = true
		l.head = last.node
		// The successor takes over the head's place in first's lap.
		return Iterator[T]{list: l, node: last.node, lap: first.lap}
	}
	return last
}

// span counts the nodes in [first, last) without touching them.
func (l *List[T]) span(first, last Iterator[T]) int {
	n := 0
	cur, lap := first.node, first.lap
	for cur != last.node || lap != last.lap {
		if n > 0 && cur == first.node {
			panic("erase range wraps more than one lap")
		}
		if cur == l.head {
			lap++
		}
		cur = l.pool.at(cur).fwd
		n++
	}
	return n
}

func (l *List[T]) live(it Iterator[T]) {
	if it.node < 0 || it.node >= l.pool.len() || !l.pool.at(it.node).occupied {
		panic("use of an invalidated iterator")
	}
}

func (l *List[T]) owns(it Iterator[T]) {
	if it.list != l {
		panic("iterator belongs to another list")
	}
}

// All yields each element once, starting at the head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := l.Begin(), l.End(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields each element once, ending at the head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		begin := l.Begin()
		for it := l.End(); !it.Equal(begin); {
			it = it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	var values []T
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	sep := ""
	for v := range l.All() {
		fmt.Fprintf(&b, "%s%v", sep, v)
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold the same values in the same order, each
// read from its own head.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	ai, aEnd := a.Begin(), a.End()
	bi, bEnd := b.Begin(), b.End()
	for ; !ai.Equal(aEnd) && !bi.Equal(bEnd); ai, bi = ai.Next(), bi.Next() {
		if !eq(ai.Value(), bi.Value()) {
			return false
		}
	}
	return ai.Equal(aEnd) && bi.Equal(bEnd)
}
