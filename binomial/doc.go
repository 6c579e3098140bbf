/*
Package binomial implements a mergeable priority queue as a binomial heap.

The heap is a forest of binomial trees whose roots form a list ordered by
increasing degree. Push, Pop and Merge all run in O(log n), where a
slice-backed heap needs O(n) to combine two queues.

	h := binomial.NewMax[int]()
	h.Push(5)
	h.Push(8)
	top, _ := h.Top() // 8

Ordering is supplied as a Compare function reporting whether x is worse
than y; the heap surfaces the element nothing else beats.
*/
package binomial
