package singly

import (
	"testing"
)

var result int

func BenchmarkPushFront(b *testing.B) {
	l := NewLinkedList[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
}

func BenchmarkPushBack_10(b *testing.B) { pushBack(b, 1<<10) }
func BenchmarkPushBack_12(b *testing.B) { pushBack(b, 1<<12) }

func pushBack(b *testing.B, nodeCount int) {
	for i := 0; i < b.N; i++ {
		l := NewLinkedList[int]()
		for j := 0; j < nodeCount; j++ {
			l.PushBack(j)
		}
	}
}

func BenchmarkAt(b *testing.B) {
	n := 1 << 10
	l := NewLinkedList[int]()
	for i := 0; i < n; i++ {
		l.PushFront(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, _ = l.At(i % n)
	}
}

func BenchmarkIterator(b *testing.B) {
	l := NewLinkedList[int]()
	for i := 0; i < 1<<10; i++ {
		l.PushFront(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := l.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			result = v
		}
	}
}

func BenchmarkClear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := NewLinkedList[int]()
		for j := 0; j < 1<<12; j++ {
			l.PushFront(j)
		}
		b.StartTimer()
		l.Clear()
	}
}
