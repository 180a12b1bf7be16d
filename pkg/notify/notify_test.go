package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	queue := NewQueue(10)

	queue.Notify(Notification{Title: "first"})
	queue.Notify(Notification{Title: "second"})
	assert.Equal(t, 2, queue.Size())

	n, ok := queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "first", n.Title)
	assert.False(t, n.CreatedAt.IsZero())

	n, ok = queue.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "second", n.Title)

	_, ok = queue.Dequeue()
	assert.False(t, ok)
}

func TestQueueDropsWhenFull(t *testing.T) {
	queue := NewQueue(2)

	for i := 0; i < 5; i++ {
		queue.Notify(Notification{Title: fmt.Sprintf("toast %d", i)})
	}
	assert.Equal(t, 2, queue.Size())
}

func TestQueueDrain(t *testing.T) {
	queue := NewQueue(10)
	queue.Notify(Notification{Title: "first"})
	queue.Notify(Notification{Title: "second"})

	drained := queue.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, queue.Size())
}
