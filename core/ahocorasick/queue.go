// core/ahocorasick/queue.go
package ahocorasick

// queue is a FIFO of state ids for the breadth-first failure pass.
type queue struct {
	items []int
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]int, 0, capacity)}
}

func (q *queue) push(s int) { q.items = append(q.items, s) }

func (q *queue) pop() int {
	if q.empty() {
		panic("ahocorasick: pop from empty queue")
	}
	s := q.items[q.head]
	q.head++
	return s
}

func (q *queue) empty() bool { return q.head >= len(q.items) }
