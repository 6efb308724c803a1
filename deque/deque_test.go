package deque

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque_BothEnds(t *testing.T) {
	d := New[int]()

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	d.PushFront(0)
	require.Equal(t, 4, d.Len())

	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, 0, front)
	back, ok := d.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	assert.Equal(t, []int{0, 1, 2, 3}, d.ToSlice())

	v, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, d.ToSlice())
}

func TestDeque_EmptyQueries(t *testing.T) {
	d := New[string]()
	assert.True(t, d.IsEmpty())

	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
	_, ok = d.Front()
	assert.False(t, ok)
	_, ok = d.Back()
	assert.False(t, ok)
}

func TestDeque_WraparoundGrowth(t *testing.T) {
	d := New[int]()

	// Force the head away from index 0, then grow past the initial capacity
	// so the ring has to unwind.
	for i := 0; i < 6; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 4; i++ {
		_, ok := d.PopFront()
		require.True(t, ok)
	}
	for i := 6; i < 30; i++ {
		d.PushBack(i)
	}
	d.PushFront(3)

	want := []int{3, 4, 5}
	for i := 6; i < 30; i++ {
		want = append(want, i)
	}
	if diff := cmp.Diff(want, d.ToSlice()); diff != "" {
		t.Fatalf("contents after wraparound growth (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(want), d.Len())
}

func TestDeque_FIFOAndLIFO(t *testing.T) {
	t.Run("queue use", func(t *testing.T) {
		d := New(1, 2, 3)
		var got []int
		for !d.IsEmpty() {
			v, _ := d.PopFront()
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("stack use", func(t *testing.T) {
		d := New(1, 2, 3)
		var got []int
		for !d.IsEmpty() {
			v, _ := d.PopBack()
			got = append(got, v)
		}
		assert.Equal(t, []int{3, 2, 1}, got)
	})
}

func TestDeque_Clear(t *testing.T) {
	d := New(1, 2, 3)
	d.Clear()
	assert.True(t, d.IsEmpty())
	_, ok := d.PopFront()
	assert.False(t, ok)

	// Still usable after Clear.
	d.PushBack(7)
	assert.Equal(t, []int{7}, d.ToSlice())
}

func TestDeque_InitialValuesCopied(t *testing.T) {
	src := []int{1, 2, 3}
	d := New(src...)
	src[0] = -1
	front, _ := d.Front()
	assert.Equal(t, 1, front)
}

func TestDeque_All(t *testing.T) {
	d := New(1, 2, 3)
	var seen []int
	for v := range d.All() {
		d.PushBack(99) // snapshot: safe mid-iteration
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 6, d.Len())
}
