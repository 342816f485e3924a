package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddContainsUnion(t *testing.T) {
	var a, b Set
	a.Add(3)
	a.Add(1)
	assert.True(t, a.Contains(1))
	assert.False(t, a.Contains(2))

	b.Add(2)
	b.Add(3)
	a.Union(&b)
	assert.Equal(t, []int{3, 1, 2}, a.Values())

	// idempotent
	a.Union(&b)
	assert.Equal(t, 3, a.Len())
}

func TestQueueFIFO(t *testing.T) {
	q := newQueue(1)
	assert.True(t, q.empty())
	for i := 1; i <= 5; i++ {
		q.push(i)
	}
	for i := 1; i <= 5; i++ {
		assert.Equal(t, i, q.pop())
	}
	assert.True(t, q.empty())
	assert.Panics(t, func() { q.pop() })
}
