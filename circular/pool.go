package circular

import (
	"github.com/google/btree"
)

type slot[T any] struct {
	fwd      int
	bwd      int
	value    T
	occupied bool
	isHead   bool
}

type slotIndex int

func (s slotIndex) Less(than btree.Item) bool {
	return s < than.(slotIndex)
}

// pool hands out slot indices. Free slots are kept in a btree so the lowest
// free index is always reused first.
type pool[T any] struct {
	slots []slot[T]
	free  *btree.BTree
}

func newPool[T any](capacity int) pool[T] {
	return pool[T]{
		slots: make([]slot[T], 0, capacity),
		free:  btree.New(5),
	}
}

func (p *pool[T]) at(i int) *slot[T] {
	return &p.slots[i]
}

func (p *pool[T]) len() int {
	return len(p.slots)
}

// allocate returns the index of a newly occupied slot. want is the number of
// slots the caller still needs and sizes the growth when nothing is free.
func (p *pool[T]) allocate(want int) int {
	if p.free.Len() == 0 {
		p.grow(want)
	}
	i := int(p.free.DeleteMin().(slotIndex))
	s := &p.slots[i]
	s.occupied = true
	s.isHead = false
	return i
}

func (p *pool[T]) grow(want int) {
	n := len(p.slots)
	if want < n {
		want = n
	}
	if want < 1 {
		want = 1
	}
	for i := n; i < n+want; i++ {
		p.slots = append(p.slots, slot[T]{})
		p.free.ReplaceOrInsert(slotIndex(i))
	}
}

// release frees slot i. Its links are left as they were.
func (p *pool[T]) release(i int) {
	var zero T
	s := &p.slots[i]
	s.occupied = false
	s.isHead = false
	s.value = zero
	p.free.ReplaceOrInsert(slotIndex(i))
}

func (p *pool[T]) isFree(i int) bool {
	return p.free.Has(slotIndex(i))
}
