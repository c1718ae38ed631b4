// Package singly implements a generic singly linked list with index based
// access, splicing at arbitrary positions and a forward iterator.
//
// A LinkedList is not safe for concurrent use. Mutating a list while an
// Iterator obtained from it is still in use is undefined.
package singly

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyList       = errors.New("empty list")
)

func indexerr(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", index, size)
}

func emptyerr(op string) error {
	return errors.Wrap(ErrEmptyList, op)
}

// region Node
type node[T any] struct {
	value T
	next  *node[T]
}

func newnode[T any](v T, next *node[T]) *node[T] {
	return &node[T]{value: v, next: next}
}

func (n *node[T]) Value() T {
	return n.value
}

func (n *node[T]) setValue(v T) {
	n.value = v
}

func (n *node[T]) Next() *node[T] {
	return n.next
}

func (n *node[T]) setNext(next *node[T]) {
	n.next = next
}

// destroy drops the direct link only, the rest of the chain is left to the caller.
func (n *node[T]) destroy() {
	var zero T
	n.value = zero
	n.next = nil
}

// endregion

// region LinkedList

// LinkedList is a singly linked list. The zero value is an empty list ready
// to use.
type LinkedList[T any] struct {
	head *node[T]
	len  int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Len() int {
	return l.len
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

// locate walks from head until the counter reaches index and returns the
// node there with its predecessor. The walk never moves past the tail, so
// callers must check the index first.
func (l *LinkedList[T]) locate(index int) (prev, curr *node[T]) {
	curr = l.head
	for i := 0; curr.Next() != nil; i++ {
		if i == index {
			break
		}

		prev, curr = curr, curr.Next()
	}

	return prev, curr
}

func (l *LinkedList[T]) tailnode() *node[T] {
	n := l.head
	for n.Next() != nil {
		n = n.Next()
	}

	return n
}

// At returns the element at index in O(index).
func (l *LinkedList[T]) At(index int) (T, error) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, indexerr(index, l.len)
	}

	_, n := l.locate(index)
	return n.Value(), nil
}

func (l *LinkedList[T]) PushFront(v T) {
	l.head = newnode(v, l.head)
	l.len++
}

// PushBack appends v after the tail. There is no tail cache, so this walks
// the whole chain.
func (l *LinkedList[T]) PushBack(v T) {
	if l.head == nil {
		l.PushFront(v)
		return
	}

	l.tailnode().setNext(newnode[T](v, nil))
	l.len++
}

// Insert places v so that it becomes the element at index. Valid indexes
// are [0, Len()]; index == Len() appends.
func (l *LinkedList[T]) Insert(index int, v T) error {
	if index < 0 || index > l.len {
		return indexerr(index, l.len)
	}

	if index == 0 {
		l.PushFront(v)
		return nil
	}

	if index == l.len {
		l.PushBack(v)
		return nil
	}

	prev, curr := l.locate(index)
	prev.setNext(newnode(v, curr))
	l.len++
	return nil
}

func (l *LinkedList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyerr("pop front")
	}

	n := l.head
	l.head = n.Next()
	v := n.Value()
	n.destroy()
	l.len--

	return v, nil
}

// PopBack removes the tail, walking to the second to last node.
func (l *LinkedList[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyerr("pop back")
	}

	if l.head.Next() == nil {
		return l.PopFront()
	}

	prev := l.head
	for prev.Next().Next() != nil {
		prev = prev.Next()
	}

	n := prev.Next()
	prev.setNext(nil)
	v := n.Value()
	n.destroy()
	l.len--

	return v, nil
}

// Erase removes the element at index without returning it.
func (l *LinkedList[T]) Erase(index int) error {
	if index < 0 || index >= l.len {
		return indexerr(index, l.len)
	}

	if index == 0 {
		_, err := l.PopFront()
		return err
	}

	if index == l.len-1 {
		_, err := l.PopBack()
		return err
	}

	prev, curr := l.locate(index)
	prev.setNext(curr.Next())
	curr.destroy()
	l.len--
	return nil
}

func (l *LinkedList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyerr("front")
	}

	return l.head.Value(), nil
}

func (l *LinkedList[T]) Back() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyerr("back")
	}

	return l.tailnode().Value(), nil
}

// Set replaces the element at index.
func (l *LinkedList[T]) Set(index int, v T) error {
	if index < 0 || index >= l.len {
		return indexerr(index, l.len)
	}

	_, n := l.locate(index)
	n.setValue(v)
	return nil
}

// Clear releases every node one at a time and leaves the list empty.
func (l *LinkedList[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.Next()
		n.destroy()
		n = next
	}

	l.head = nil
	l.len = 0
}

func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{curr: l.head}
}

func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *LinkedList[T]) Iterator() *Iterator[T] {
	return NewIterator(l)
}

// All returns the elements from head to tail. Each call starts a fresh walk.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.Next() {
			if !yield(n.Value()) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}

	return values
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.Next() {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.Value())
	}
	sb.WriteByte(']')

	return sb.String()
}

// endregion
