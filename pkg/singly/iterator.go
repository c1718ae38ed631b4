package singly

// region Iterator

// Iterator is a forward cursor over the nodes of a LinkedList. It does not
// own the nodes: the list must not be mutated while the iterator is in use.
// The zero value is the end marker.
type Iterator[T any] struct {
	curr *node[T]
}

func NewIterator[T any](list *LinkedList[T]) *Iterator[T] {
	return &Iterator[T]{curr: list.head}
}

// Value returns the element under the cursor. Calling Value on the end
// marker panics.
func (it *Iterator[T]) Value() T {
	return it.curr.Value()
}

// Equal reports whether both iterators reference the same node.
func (it *Iterator[T]) Equal(other Iterator[T]) bool {
	return it.curr == other.curr
}

func (it *Iterator[T]) Done() bool {
	return it.curr == nil
}

// Advance moves to the next node and returns it. At the end it stays put.
func (it *Iterator[T]) Advance() *Iterator[T] {
	if it.curr != nil {
		it.curr = it.curr.Next()
	}

	return it
}

// Next returns the element under the cursor, then advances.
func (it *Iterator[T]) Next() (T, bool) {
	if it.curr == nil {
		var zero T
		return zero, false
	}

	n := it.curr
	it.curr = n.Next()

	return n.Value(), true
}

// endregion
