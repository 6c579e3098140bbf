package binomial

import (
	"github.com/contribsys/binheap/util"
	"golang.org/x/exp/constraints"
)

/*
Compare reports whether x is worse than y. The heap surfaces the element
that is not worse than any other: with "x < y" that is the maximum, with
"x > y" the minimum.
*/
type Compare[T any] func(x, y T) bool

/*
Heap is a mergeable priority queue kept as a forest of binomial trees. The
root list is ordered by strictly increasing degree and never holds two trees
of the same degree, so a heap of n elements has at most log2(n)+1 roots.

A Heap is not safe for concurrent use.
*/
type Heap[T any] struct {
	head   *node[T]
	length int
	worse  Compare[T]
}

/*
Create an empty heap ordered by "compare".
*/
func New[T any](compare Compare[T]) *Heap[T] {
	if compare == nil {
		panic("binomial: nil Compare")
	}
	return &Heap[T]{worse: compare}
}

// NewMax returns a heap that surfaces the largest element.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New[T](func(x, y T) bool { return x < y })
}

// NewMin returns a heap that surfaces the smallest element.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New[T](func(x, y T) bool { return x > y })
}

func NewOrdered[T constraints.Ordered](order Order) *Heap[T] {
	if order == MinFirst {
		return NewMin[T]()
	}
	return NewMax[T]()
}

func (h *Heap[T]) Size() int {
	return h.length
}

func (h *Heap[T]) Empty() bool {
	return h.length == 0
}

/*
Return the preferred element without removing it. Among equally ranked
roots the one closest to the head wins.
*/
func (h *Heap[T]) Top() (T, error) {
	if h.length == 0 {
		var zero T
		return zero, ErrContainerEmpty
	}
	best, _ := h.best()
	return best.value, nil
}

/*
Insert a value. This is union specialised to a single degree-0 tree: the new
node is a carry that absorbs roots of its own degree from the front of the
list until a gap appears.

The work is split in two phases. Planning walks the list and asks the
comparator who wins each link without touching any node; committing then
performs the links. A comparator that panics while planning leaves the heap
exactly as it was.
*/
func (h *Heap[T]) Push(value T) {
	carry := newNode(value)
	rest, carryWins := h.planPush(carry)

	for r := h.head; r != rest; {
		next := r.sibling
		if carryWins[0] {
			link(carry, r)
		} else {
			link(r, carry)
			carry = r
		}
		carryWins = carryWins[1:]
		r = next
	}

	carry.sibling = rest
	h.head = carry
	h.length++
}

/*
Walk the roots the carry will absorb. Returns the first root left untouched
and, for every absorbed root, whether the carry stays the parent. On equal
values the root already in the heap becomes the parent, matching union.
*/
func (h *Heap[T]) planPush(carry *node[T]) (*node[T], []bool) {
	var wins []bool
	winner := carry.value
	degree := 0

	r := h.head
	for r != nil && r.degree == degree {
		if h.worse(r.value, winner) {
			wins = append(wins, true)
		} else {
			wins = append(wins, false)
			winner = r.value
		}
		degree++
		r = r.sibling
	}
	return r, wins
}

/*
Remove the preferred element and return it.
The root scan asks the comparator before anything is unlinked.
*/
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if h.length == 0 {
		return zero, ErrContainerEmpty
	}

	best, before := h.best()
	if before == nil {
		h.head = best.sibling
	} else {
		before.sibling = best.sibling
	}
	best.sibling = nil

	value := best.value
	children := best.detachChildren()
	best.value = zero

	h.head = union(h.head, children, h.worse)
	h.length--
	return value, nil
}

/*
Move every element of "other" into h, leaving "other" empty. Both heaps are
expected to use the same ordering; the receiver's comparator decides.
*/
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h || other.length == 0 {
		return
	}

	h.head = union(h.head, other.head, h.worse)
	h.length += other.length
	util.Debugf("binomial: merged %d elements, size now %d", other.length, h.length)

	other.head = nil
	other.length = 0
}

/*
Return an independent deep copy sharing no nodes with h.
*/
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		head:   copyForest(h.head),
		length: h.length,
		worse:  h.worse,
	}
}

/*
Replace the contents of h with a deep copy of "src", including its
ordering. Assigning a heap to itself does nothing.
*/
func (h *Heap[T]) Assign(src *Heap[T]) {
	if src == h {
		return
	}
	released := releaseForest(h.head)
	h.head = copyForest(src.head)
	h.length = src.length
	h.worse = src.worse
	util.Debugf("binomial: assign released %d nodes, copied %d", released, h.length)
}

/*
Release every node and leave the heap empty.
*/
func (h *Heap[T]) Clear() {
	released := releaseForest(h.head)
	h.head = nil
	h.length = 0
	util.Debugf("binomial: cleared %d nodes", released)
}

// Returns the preferred root and the root before it, nil when it's the head.
func (h *Heap[T]) best() (*node[T], *node[T]) {
	best := h.head
	var before *node[T]

	prev := h.head
	for r := h.head.sibling; r != nil; r = r.sibling {
		if h.worse(best.value, r.value) {
			best = r
			before = prev
		}
		prev = r
	}
	return best, before
}
