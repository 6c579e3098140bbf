package binomial

/*
A single node of a binomial tree. Roots are threaded through "sibling" to
form the root list of the heap; the children of a node form their own
sibling chain, highest degree first, since every link pushes the new child
onto the front.
*/
type node[T any] struct {
	value T

	// Number of children. A node of degree d roots a tree of 2^d nodes.
	degree int

	// Non-owning back reference, nil for roots.
	parent *node[T]

	// First child, the one with degree-1.
	child *node[T]

	// Next root in the root list, or next child of the same parent.
	sibling *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

/*
Make "b" the first child of "a". Both must have the same degree and be
detached from any list the caller still walks through b.sibling, since
that link is overwritten.
*/
func link[T any](a, b *node[T]) {
	b.parent = a
	b.sibling = a.child
	a.child = b
	a.degree++
}

/*
Merge two root lists, each strictly increasing by degree, into one list
ordered by non-decreasing degree. Equal degrees take the node from "a" first.
Duplicate degrees are left for union to collapse.
*/
func mergeRootLists[T any](a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var first *node[T]
	if a.degree <= b.degree {
		first = a
		a = a.sibling
	} else {
		first = b
		b = b.sibling
	}

	tail := first
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.sibling = a
			tail = a
			a = a.sibling
		} else {
			tail.sibling = b
			tail = b
			b = b.sibling
		}
	}

	if a != nil {
		tail.sibling = a
	} else {
		tail.sibling = b
	}
	return first
}

/*
Merge two root lists and collapse duplicate degrees by linking, like carries
in binary addition. The window (prev, now, next) only links when "now" and
"next" share a degree and the node after "next" does not: in a run of three
equal degrees the first one is left alone and the later pair is linked, which
keeps the list sorted.
"worse" decides which root survives as the parent.
*/
func union[T any](a, b *node[T], worse Compare[T]) *node[T] {
	first := mergeRootLists(a, b)
	if first == nil {
		return nil
	}

	var prev *node[T]
	now := first
	next := first.sibling

	for next != nil {
		if now.degree != next.degree || (next.sibling != nil && next.sibling.degree == now.degree) {
			prev = now
			now = next
			next = next.sibling
			continue
		}

		if worse(next.value, now.value) {
			now.sibling = next.sibling
			link(now, next)
		} else {
			if prev == nil {
				first = next
			} else {
				prev.sibling = next
			}
			link(next, now)
			now = next
		}
		next = now.sibling
	}
	return first
}

/*
Detach the children of "n" and return them as a root list ordered by
increasing degree. Each child loses its parent reference.
*/
func (n *node[T]) detachChildren() *node[T] {
	var head *node[T]
	child := n.child
	for child != nil {
		next := child.sibling
		child.parent = nil
		child.sibling = head
		head = child
		child = next
	}
	n.child = nil
	n.degree = 0
	return head
}

// A sibling chain still to be copied, the slot its copy goes into and the
// parent that copy hangs from.
type pendingCopy[T any] struct {
	from   *node[T]
	into   **node[T]
	parent *node[T]
}

/*
Duplicate a whole root list. The walk uses an explicit stack instead of
recursion: each entry copies one sibling chain under a given parent and
queues the child chains it meets for later.
*/
func copyForest[T any](src *node[T]) *node[T] {
	var head *node[T]
	stack := []pendingCopy[T]{{from: src, into: &head}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		slot := top.into
		for s := top.from; s != nil; s = s.sibling {
			dup := &node[T]{
				value:  s.value,
				degree: s.degree,
				parent: top.parent,
			}
			*slot = dup
			slot = &dup.sibling

			if s.child != nil {
				stack = append(stack, pendingCopy[T]{from: s.child, into: &dup.child, parent: dup})
			}
		}
	}
	return head
}

/*
Tear down a root list, children before siblings before the node itself.
Every node is zeroed so neither values nor links stay reachable through a
stale reference. Returns the number of nodes released.
*/
func releaseForest[T any](head *node[T]) int {
	if head == nil {
		return 0
	}

	// pre-order visiting node, sibling, child; reversed it yields child,
	// sibling, node.
	var order []*node[T]
	stack := []*node[T]{head}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		if n.child != nil {
			stack = append(stack, n.child)
		}
		if n.sibling != nil {
			stack = append(stack, n.sibling)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		*order[i] = node[T]{}
	}
	return len(order)
}
