package binomial

import "github.com/pkg/errors"

/*
Validate walks the whole forest and reports the first broken invariant:
roots in strictly increasing degree with no parent, every tree a binomial
tree of its degree with correct parent references, no child preferred over
its parent, and a node count matching Size.
It is O(n) and meant for tests and debugging.
*/
func (h *Heap[T]) Validate() error {
	total := 0
	lastDegree := -1

	for r := h.head; r != nil; r = r.sibling {
		if r.parent != nil {
			return errors.Errorf("root of degree %d has a parent", r.degree)
		}
		if r.degree <= lastDegree {
			return errors.Errorf("root degree %d follows degree %d", r.degree, lastDegree)
		}
		lastDegree = r.degree

		count, err := h.validateTree(r)
		if err != nil {
			return err
		}
		total += count
	}

	if total != h.length {
		return errors.Errorf("forest holds %d nodes, size is %d", total, h.length)
	}
	return nil
}

func (h *Heap[T]) validateTree(root *node[T]) (int, error) {
	count := 0
	stack := []*node[T]{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		want := n.degree - 1
		for c := n.child; c != nil; c = c.sibling {
			if c.degree != want {
				return 0, errors.Errorf("child of degree %d found where %d expected under degree %d node", c.degree, want, n.degree)
			}
			if c.parent != n {
				return 0, errors.Errorf("child of degree %d has a stale parent reference", c.degree)
			}
			if h.worse(n.value, c.value) {
				return 0, errors.Errorf("heap order broken below degree %d node", n.degree)
			}
			stack = append(stack, c)
			want--
		}
		if want != -1 {
			return 0, errors.Errorf("degree %d node is missing %d children", n.degree, want+1)
		}
	}

	if count != 1<<root.degree {
		return 0, errors.Errorf("tree of degree %d holds %d nodes", root.degree, count)
	}
	return count, nil
}
