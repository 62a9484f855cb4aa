package circular

import (
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("corrupt ring")

// Validate walks the ring and the slab and reports the first broken
// invariant it finds.
func (l *List[T]) Validate() error {
	occupied := 0
	for i := range l.pool.slots {
		s := l.pool.at(i)
		if s.occupied == l.pool.isFree(i) {
			return fmt.Errorf("%w: slot %d free set out of sync", ErrCorrupt, i)
		}
		if s.occupied {
			occupied++
		}
		if s.isHead && i != l.head {
			return fmt.Errorf("%w: slot %d flagged head, head is %d", ErrCorrupt, i, l.head)
		}
	}

	if l.Empty() {
		if l.head != noNode {
			return fmt.Errorf("%w: head %d on an empty ring", ErrCorrupt, l.head)
		}
		if occupied != 0 {
			return fmt.Errorf("%w: %d occupied slots on an empty ring", ErrCorrupt, occupied)
		}
		return nil
	}
	if l.head >= l.pool.len() {
		return fmt.Errorf("%w: head %d out of range", ErrCorrupt, l.head)
	}
	if !l.pool.at(l.head).isHead || !l.pool.at(l.head).occupied {
		return fmt.Errorf("%w: head slot %d is not a live head", ErrCorrupt, l.head)
	}

	// Walk the raw links so that a bad link is reported instead of panicking.
	seen := 0
	cur := l.head
	for {
		s := l.pool.at(cur)
		if !s.occupied {
			return fmt.Errorf("%w: freed slot %d reachable from head", ErrCorrupt, cur)
		}
		if l.pool.at(s.fwd).bwd != cur {
			return fmt.Errorf("%w: slot %d forward link not mirrored", ErrCorrupt, cur)
		}
		seen++
		if seen > occupied {
			return fmt.Errorf("%w: cycle from head does not close", ErrCorrupt)
		}
		cur = s.fwd
		if cur == l.head {
			break
		}
	}
	if seen != occupied {
		return fmt.Errorf("%w: cycle holds %d of %d occupied slots", ErrCorrupt, seen, occupied)
	}
	return nil
}
